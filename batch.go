package easing

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type descriptorYAML struct {
	Platform string `yaml:"platform"`
	Curve    string `yaml:"curve,omitempty"`
	Easing   string `yaml:"easing,omitempty"`
	Params   Params `yaml:"params,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (d *Descriptor) MarshalYAML() (interface{}, error) {
	v := descriptorYAML{
		Platform: d.platform.String(),
		Curve:    d.curve,
		Params:   d.params,
	}
	if f, ok := d.Family(); ok && f.Modes {
		v.Easing = d.easing.String()
	}
	return v, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The fields are applied through the descriptor's setters, so parameters are validated as with SetParam. A missing curve selects the platform's default curve and missing parameters keep their defaults.
func (d *Descriptor) UnmarshalYAML(node *yaml.Node) error {
	v := descriptorYAML{}
	if err := node.Decode(&v); err != nil {
		return err
	}

	platform, err := ParsePlatform(v.Platform)
	if err != nil {
		return err
	}
	if err := d.SetPlatform(platform); err != nil {
		return err
	}
	if v.Curve != "" {
		d.SetCurve(v.Curve)
	}
	if v.Easing != "" {
		easing, err := ParseEasing(v.Easing)
		if err != nil {
			return err
		}
		if err := d.SetEasing(easing); err != nil {
			return err
		}
	}
	for _, name := range v.Params.Names() {
		if err := d.SetParam(name, v.Params[name]); err != nil {
			return err
		}
	}
	return nil
}

// LoadDescriptors reads a YAML batch file of the form
//
//	curves:
//	  - platform: android
//	    curve: anticipate
//	    params: {tension: 3}
//
// Errors are reported with the index and line of the offending entry.
func LoadDescriptors(r io.Reader) ([]*Descriptor, error) {
	batch := struct {
		Curves []yaml.Node `yaml:"curves"`
	}{}
	if err := yaml.NewDecoder(r).Decode(&batch); err != nil && err != io.EOF {
		return nil, fmt.Errorf("batch: %w", err)
	}

	ds := make([]*Descriptor, 0, len(batch.Curves))
	for i := range batch.Curves {
		d := NewDescriptor()
		if err := batch.Curves[i].Decode(d); err != nil {
			return nil, fmt.Errorf("batch: curve %d (line %d): %w", i, batch.Curves[i].Line, err)
		}
		ds = append(ds, d)
	}
	return ds, nil
}

// SaveDescriptors writes descriptors as a YAML batch file that can be read by LoadDescriptors.
func SaveDescriptors(w io.Writer, ds []*Descriptor) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	batch := struct {
		Curves []*Descriptor `yaml:"curves"`
	}{ds}
	if err := enc.Encode(batch); err != nil {
		return err
	}
	return enc.Close()
}
