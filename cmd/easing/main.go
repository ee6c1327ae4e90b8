package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/easing"
	"github.com/tdewolff/easing/host"
	"github.com/tdewolff/easing/preview"
)

type Main struct{}

type List struct {
	Platform string `short:"p" desc:"Platform (rive, android or ios)"`
}

type Eval struct {
	Platform string        `short:"p" default:"rive" desc:"Platform (rive, android or ios)"`
	Curve    string        `short:"c" desc:"Curve type, defaults to the platform's default curve"`
	Easing   string        `short:"e" desc:"Easing mode (easeIn, easeOut or easeInOut)"`
	Params   easing.Params `short:"a" desc:"Parameters, e.g. {tension:3 factor:1.5}"`
	Samples  int           `short:"n" default:"10" desc:"Number of intervals"`
}

type Expr struct {
	Platform string        `short:"p" default:"rive" desc:"Platform (rive, android or ios)"`
	Curve    string        `short:"c" desc:"Curve type, defaults to the platform's default curve"`
	Easing   string        `short:"e" desc:"Easing mode (easeIn, easeOut or easeInOut)"`
	Params   easing.Params `short:"a" desc:"Parameters, e.g. {tension:3 factor:1.5}"`
	Keys     bool          `short:"k" desc:"Interpolate between the first and last keyframe instead of the layer's in and out points"`
	Minify   bool          `short:"m" desc:"Minify expression"`
	Output   string        `short:"o" desc:"Output file"`
}

type Preview struct {
	Platform string        `short:"p" default:"rive" desc:"Platform (rive, android or ios)"`
	Curve    string        `short:"c" desc:"Curve type, defaults to the platform's default curve"`
	Easing   string        `short:"e" desc:"Easing mode (easeIn, easeOut or easeInOut)"`
	Params   easing.Params `short:"a" desc:"Parameters, e.g. {tension:3 factor:1.5}"`
	Style    string        `short:"s" default:"curve" desc:"Style (curve, plot or chart)"`
	Samples  int           `short:"n" default:"200" desc:"Number of intervals"`
	Output   string        `short:"o" desc:"Output file, format by extension (svg, pdf, png, ...; chart is svg only)"`
}

type Verify struct {
	File string `short:"f" desc:"Batch file, defaults to all registered curves"`
}

type Batch struct {
	File   string `short:"f" desc:"Batch file"`
	Dir    string `short:"d" default:"." desc:"Output directory"`
	Keys   bool   `short:"k" desc:"Interpolate between the first and last keyframe instead of the layer's in and out points"`
	Minify bool   `short:"m" desc:"Minify expressions"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Easing curve evaluator and expression generator by Taco de Wolff")
	root.AddCmd(&List{}, "list", "List curves and their parameters")
	root.AddCmd(&Eval{}, "eval", "Evaluate curve")
	root.AddCmd(&Expr{}, "expr", "Generate expression")
	root.AddCmd(&Preview{}, "preview", "Render curve")
	root.AddCmd(&Verify{}, "verify", "Verify curves and their expressions")
	root.AddCmd(&Batch{}, "batch", "Generate expressions for a batch file")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

func (cmd *List) Run() error {
	platforms := easing.Platforms
	if cmd.Platform != "" {
		platform, err := easing.ParsePlatform(cmd.Platform)
		if err != nil {
			return err
		}
		platforms = []easing.Platform{platform}
	}

	for _, platform := range platforms {
		fmt.Printf("%s (%s):\n", platform.Title(), platform)
		for _, f := range easing.Families(platform) {
			fmt.Printf("  %-22s %s", f.Key, f.Name)
			if f.Curve == easing.DefaultCurve(platform) {
				fmt.Printf(" (default)")
			}
			fmt.Println()
			for _, spec := range f.ParamSpecs() {
				fmt.Printf("    %-10s %-6v [%v,%v] step %v\n", spec.Name, f.Defaults[spec.Name], spec.Min, spec.Max, spec.Step)
			}
			if f.Modes {
				fmt.Printf("    easing     easeOut, easeIn or easeInOut\n")
			}
		}
	}
	return nil
}

func (cmd *Eval) Run() error {
	d, err := newDescriptor(cmd.Platform, cmd.Curve, cmd.Easing, cmd.Params)
	if err != nil {
		return err
	}
	r, err := easing.ResolveDescriptor(d)
	if err != nil {
		return err
	} else if cmd.Samples < 1 {
		return fmt.Errorf("number of intervals must be positive")
	}

	fmt.Println(d)
	for i := 0; i <= cmd.Samples; i++ {
		t := float64(i) / float64(cmd.Samples)
		fmt.Printf("%8.4f %12.8f\n", t, r.Ease(t))
	}
	return nil
}

func (cmd *Expr) Run() error {
	d, err := newDescriptor(cmd.Platform, cmd.Curve, cmd.Easing, cmd.Params)
	if err != nil {
		return err
	}

	src, err := easing.Generate(d, exprOptions(cmd.Keys, cmd.Minify))
	if err != nil {
		return err
	}
	if cmd.Output == "" || cmd.Output == "-" {
		fmt.Print(src)
		return nil
	}
	return os.WriteFile(cmd.Output, []byte(src), 0644)
}

func (cmd *Preview) Run() error {
	if cmd.Output == "" {
		fmt.Println("ERROR: must specify output filename")
		return argp.ShowUsage
	}

	d, err := newDescriptor(cmd.Platform, cmd.Curve, cmd.Easing, cmd.Params)
	if err != nil {
		return err
	}
	r, err := easing.ResolveDescriptor(d)
	if err != nil {
		return err
	}

	opts := preview.DefaultOptions
	opts.Samples = cmd.Samples
	switch cmd.Style {
	case "curve":
		return preview.Write(cmd.Output, r, opts)
	case "plot":
		return preview.WritePlot(cmd.Output, r, d.String(), opts)
	case "chart":
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		if err := preview.WriteChart(f, r, d.String(), cmd.Samples); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return fmt.Errorf("unknown style: %s", cmd.Style)
}

func (cmd *Verify) Run() error {
	ds := host.Registered()
	if cmd.File != "" {
		var err error
		if ds, err = loadDescriptors(cmd.File); err != nil {
			return err
		}
	}

	failed := 0
	for _, res := range host.Verify(ds, host.DefaultSamples) {
		if res.OK() {
			fmt.Printf("ok    %-50s max diff %.3g\n", res.Descriptor, res.MaxDiff)
		} else {
			failed++
			fmt.Printf("FAIL  %-50s %v\n", res.Descriptor, strings.ReplaceAll(res.Err().Error(), "\n", "; "))
		}
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d curves failed", failed, len(ds))
	}
	return nil
}

func (cmd *Batch) Run() error {
	if cmd.File == "" {
		return argp.ShowUsage
	}

	ds, err := loadDescriptors(cmd.File)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cmd.Dir, 0755); err != nil {
		return err
	}

	opts := exprOptions(cmd.Keys, cmd.Minify)
	for i, d := range ds {
		src, err := easing.Generate(d, opts)
		if err != nil {
			return fmt.Errorf("curve %d: %w", i, err)
		}
		filename := filepath.Join(cmd.Dir, fmt.Sprintf("%02d-%s-%s.txt", i, d.Platform(), fileKey(d.Curve())))
		if err := os.WriteFile(filename, []byte(src), 0644); err != nil {
			return err
		}
		fmt.Println(filename)
	}
	return nil
}

func exprOptions(keys, minify bool) easing.ExprOptions {
	opts := easing.DefaultExprOptions
	if keys {
		opts.Bounds = easing.KeyBounds
	}
	opts.Minify = minify
	return opts
}

func newDescriptor(platformName, curve, easingName string, params easing.Params) (*easing.Descriptor, error) {
	platform, err := easing.ParsePlatform(platformName)
	if err != nil {
		return nil, err
	}

	d := easing.NewDescriptor()
	if err := d.SetPlatform(platform); err != nil {
		return nil, err
	}
	if curve != "" {
		d.SetCurve(curve)
		if _, ok := d.Family(); !ok {
			fmt.Fprintf(os.Stderr, "WARNING: unknown curve %s for %s, using linear\n", curve, platform)
		}
	}
	if easingName != "" {
		mode, err := easing.ParseEasing(easingName)
		if err != nil {
			return nil, err
		} else if err := d.SetEasing(mode); err != nil {
			return nil, err
		}
	}

	for _, name := range params.Names() {
		if err := d.SetParam(name, params[name]); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// fileKey replaces all characters of a curve key that are not letters, digits, dashes or underscores.
func fileKey(key string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, key)
}

func loadDescriptors(filename string) ([]*easing.Descriptor, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return easing.LoadDescriptors(f)
}
