package easing

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/tdewolff/minify/v2"
	jsmin "github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/parse/v2"
	jsparse "github.com/tdewolff/parse/v2/js"
)

// Bounds selects the times and values between which a generated expression interpolates.
type Bounds int

// see Bounds
const (
	LayerBounds Bounds = iota // the layer's in and out points
	KeyBounds                 // the property's first and last keyframe
)

func (b Bounds) String() string {
	switch b {
	case LayerBounds:
		return "layer"
	case KeyBounds:
		return "keys"
	}
	return fmt.Sprintf("Bounds(%d)", int(b))
}

// ExprOptions are the options for generating expressions.
type ExprOptions struct {
	Bounds Bounds
	Minify bool
}

// DefaultExprOptions are the default options for generating expressions.
var DefaultExprOptions = ExprOptions{
	Bounds: LayerBounds,
}

// expresser is implemented by every curve of the package and writes the JavaScript statements that assign the curve's value at t to val. All parameters are written as literals and the operations mirror Ease, so that the host reproduces Ease's results.
type expresser interface {
	writeExpr(*exprWriter)
}

type exprWriter struct {
	sb strings.Builder
}

func (w *exprWriter) line(format string, args ...interface{}) {
	fmt.Fprintf(&w.sb, format, args...)
	w.sb.WriteByte('\n')
}

func (w *exprWriter) String() string {
	return w.sb.String()
}

// Generate returns the expression for the descriptor's curve, preceded by a comment describing the descriptor. Unknown curve types generate the identity curve.
func Generate(d *Descriptor, opts ExprOptions) (string, error) {
	r, err := ResolveDescriptor(d)
	if err != nil {
		return "", err
	}

	w := &exprWriter{}
	if r.Fallback {
		w.line("// %s/%s (unknown curve, linear)", d.Platform(), commentKey(d.Curve()))
	} else {
		w.line("// %s", d)
	}
	if err := writeExpr(w, r.Easer, opts.Bounds); err != nil {
		return "", err
	}
	return finishExpr(w.String(), opts)
}

// commentKey quotes a curve key that contains line terminators or other unprintable characters, so that it cannot end a line comment.
func commentKey(key string) string {
	if strings.IndexFunc(key, func(r rune) bool { return !unicode.IsPrint(r) }) != -1 {
		return strconv.Quote(key)
	}
	return key
}

// Expression returns the expression that reproduces e once per frame in the host. The host binds time, inPoint, outPoint, valueAtTime and for KeyBounds also key and numKeys. The expression's value is the property value linearly interpolated between the bounds by the curve's value, which is not clamped so that overshoot is retained. It returns ErrNoExpression if e is not a curve of this package.
func Expression(e Easer, opts ExprOptions) (string, error) {
	w := &exprWriter{}
	if err := writeExpr(w, e, opts.Bounds); err != nil {
		return "", err
	}
	return finishExpr(w.String(), opts)
}

func writeExpr(w *exprWriter, e Easer, bounds Bounds) error {
	if r, ok := e.(Resolved); ok {
		e = r.Easer
	}
	x, ok := e.(expresser)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNoExpression, e)
	}

	switch bounds {
	case LayerBounds:
		w.line("var startTime = inPoint;")
		w.line("var endTime = outPoint;")
		w.line("var startValue = valueAtTime(startTime);")
		w.line("var endValue = valueAtTime(endTime);")
	case KeyBounds:
		w.line("var startTime = key(1).time;")
		w.line("var endTime = key(numKeys).time;")
		w.line("var startValue = key(1).value;")
		w.line("var endValue = key(numKeys).value;")
	default:
		return fmt.Errorf("unknown bounds: %v", bounds)
	}
	w.line("var t = (time - startTime) / (endTime - startTime);")
	w.line("if (!(0 < t)) t = 0;")
	w.line("else if (1 < t) t = 1;")
	w.line("var val;")
	x.writeExpr(w)
	w.line("add(startValue, mul(sub(endValue, startValue), val));")
	return nil
}

func finishExpr(src string, opts ExprOptions) (string, error) {
	if opts.Minify {
		var err error
		if src, err = MinifyExpression(src); err != nil {
			return "", err
		}
	}
	return src, nil
}

// MinifyExpression minifies an expression.
func MinifyExpression(src string) (string, error) {
	m := minify.New()
	m.AddFunc("application/javascript", jsmin.Minify)
	out, err := m.String("application/javascript", src)
	if err != nil {
		return "", fmt.Errorf("minify expression: %w", err)
	}
	return out, nil
}

// CheckExpression returns an error if src is not syntactically valid JavaScript.
func CheckExpression(src string) error {
	if _, err := jsparse.Parse(parse.NewInputString(src), jsparse.Options{}); err != nil {
		return fmt.Errorf("check expression: %w", err)
	}
	return nil
}
