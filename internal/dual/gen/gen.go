package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"text/template"
)

// Generate renders the Go source for every family in cfg and returns it
// gofmt-formatted. source names the schema file for the generated-by header.
func Generate(cfg *Config, source string) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data := fileData{
		Source:  source,
		Package: cfg.Package,
	}
	for _, f := range cfg.Families {
		fam := familyData{Name: f.Name, AxisNames: f.Axes}
		for _, axis := range f.Axes {
			fam.Axes = append(fam.Axes, axisData{Name: axis, Export: export(axis)})
		}
		data.Families = append(data.Families, fam)
	}

	var buf bytes.Buffer
	if err := familyTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render families: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// GenerateFile renders cfg and writes the result to path.
func GenerateFile(cfg *Config, source, path string) error {
	src, err := Generate(cfg, source)
	if err != nil {
		return err
	}
	return os.WriteFile(path, src, 0o644)
}

type fileData struct {
	Source   string
	Package  string
	Families []familyData
}

type familyData struct {
	Name      string
	AxisNames []string
	Axes      []axisData
}

type axisData struct {
	Name   string
	Export string
}

var familyTemplate = template.Must(template.New("family").Funcs(template.FuncMap{
	"join": joinNames,
}).Parse(familySource))

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

const familySource = `// Code generated by dualgen from {{.Source}}; DO NOT EDIT.

package {{.Package}}

import "math"
{{range .Families}}{{$n := .Name}}
// {{$n}} is a dual number over the axes {{join .AxisNames}}. Real carries the
// value; each Eps field carries the partial derivative with respect to its
// axis. Distinct families are distinct types, so values of different
// families cannot be combined.
type {{$n}} struct {
	Real float64
{{- range .Axes}}
	Eps{{.Export}} float64
{{- end}}
}

// {{$n}}FromReal lifts a bare scalar: every derivative field is zero.
func {{$n}}FromReal(real float64) {{$n}} {
	return {{$n}}{Real: real}
}
{{range .Axes}}
// {{$n}}Eps{{.Export}} builds a value with an explicit derivative on {{.Name}}; every
// other derivative field starts from zero.
func {{$n}}Eps{{.Export}}(real, eps float64) {{$n}} {
	d := {{$n}}FromReal(real)
	d.Eps{{.Export}} = eps
	return d
}

// {{$n}}{{.Export}} seeds the independent variable {{.Name}}.
func {{$n}}{{.Export}}(real float64) {{$n}} {
	return {{$n}}Eps{{.Export}}(real, 1)
}

// D{{.Export}} returns the derivative with respect to {{.Name}}.
func (d {{$n}}) D{{.Export}}() float64 {
	return d.Eps{{.Export}}
}
{{end}}
// Cmp orders by real part only; derivative fields never participate. It
// reports ok=false exactly when either real part is NaN.
func (d {{$n}}) Cmp(e {{$n}}) (int, bool) {
	switch {
	case d.Real != d.Real || e.Real != e.Real:
		return 0, false
	case d.Real < e.Real:
		return -1, true
	case d.Real > e.Real:
		return 1, true
	}
	return 0, true
}

// Add returns d + e; every derivative field adds independently.
func (d {{$n}}) Add(e {{$n}}) {{$n}} {
	d.Real += e.Real
{{- range .Axes}}
	d.Eps{{.Export}} += e.Eps{{.Export}}
{{- end}}
	return d
}

// Sub returns d - e, defined as d + (-e).
func (d {{$n}}) Sub(e {{$n}}) {{$n}} {
	return d.Add(e.Neg())
}

// Mul returns d * e; each field applies the product rule against the
// original real parts.
func (d {{$n}}) Mul(e {{$n}}) {{$n}} {
	return {{$n}}{
		Real: d.Real * e.Real,
{{- range .Axes}}
		Eps{{.Export}}: d.Eps{{.Export}}*e.Real + e.Eps{{.Export}}*d.Real,
{{- end}}
	}
}

// Div returns d / e, defined as d * e.Inv().
func (d {{$n}}) Div(e {{$n}}) {{$n}} {
	return d.Mul(e.Inv())
}

// Neg returns -d, defined as multiplication by the scalar -1.
func (d {{$n}}) Neg() {{$n}} {
	return d.MulReal(-1)
}

// AddReal returns d + c; the scalar lifts to a constant first.
func (d {{$n}}) AddReal(c float64) {{$n}} {
	return d.Add({{$n}}FromReal(c))
}

// SubReal returns d - c.
func (d {{$n}}) SubReal(c float64) {{$n}} {
	return d.Sub({{$n}}FromReal(c))
}

// MulReal returns d * c.
func (d {{$n}}) MulReal(c float64) {{$n}} {
	return d.Mul({{$n}}FromReal(c))
}

// DivReal returns d / c.
func (d {{$n}}) DivReal(c float64) {{$n}} {
	return d.Div({{$n}}FromReal(c))
}

// {{$n}}RealAdd returns c + d.
func {{$n}}RealAdd(c float64, d {{$n}}) {{$n}} {
	return {{$n}}FromReal(c).Add(d)
}

// {{$n}}RealSub returns c - d.
func {{$n}}RealSub(c float64, d {{$n}}) {{$n}} {
	return {{$n}}FromReal(c).Sub(d)
}

// {{$n}}RealMul returns c * d.
func {{$n}}RealMul(c float64, d {{$n}}) {{$n}} {
	return {{$n}}FromReal(c).Mul(d)
}

// {{$n}}RealDiv returns c / d.
func {{$n}}RealDiv(c float64, d {{$n}}) {{$n}} {
	return {{$n}}FromReal(c).Div(d)
}

// AddAssign sets *d = *d + e.
func (d *{{$n}}) AddAssign(e {{$n}}) { *d = d.Add(e) }

// SubAssign sets *d = *d - e.
func (d *{{$n}}) SubAssign(e {{$n}}) { *d = d.Sub(e) }

// MulAssign sets *d = *d * e.
func (d *{{$n}}) MulAssign(e {{$n}}) { *d = d.Mul(e) }

// DivAssign sets *d = *d / e.
func (d *{{$n}}) DivAssign(e {{$n}}) { *d = d.Div(e) }

// AddRealAssign sets *d = *d + c.
func (d *{{$n}}) AddRealAssign(c float64) { *d = d.AddReal(c) }

// SubRealAssign sets *d = *d - c.
func (d *{{$n}}) SubRealAssign(c float64) { *d = d.SubReal(c) }

// MulRealAssign sets *d = *d * c.
func (d *{{$n}}) MulRealAssign(c float64) { *d = d.MulReal(c) }

// DivRealAssign sets *d = *d / c.
func (d *{{$n}}) DivRealAssign(c float64) { *d = d.DivReal(c) }

// Pow returns d raised to the scalar power p. The factor is computed from
// the real part before it is replaced; NaN and Inf from math.Pow propagate
// unguarded.
func (d {{$n}}) Pow(p float64) {{$n}} {
	factor := p * math.Pow(d.Real, p-1)
	return {{$n}}{
		Real: math.Pow(d.Real, p),
{{- range .Axes}}
		Eps{{.Export}}: d.Eps{{.Export}} * factor,
{{- end}}
	}
}

// Inv returns the reciprocal of d, defined as d.Pow(-1).
func (d {{$n}}) Inv() {{$n}} {
	return d.Pow(-1)
}

// Sin returns the sine of d; every field is scaled by cos of the original
// real part.
func (d {{$n}}) Sin() {{$n}} {
	dr := math.Cos(d.Real)
	return {{$n}}{
		Real: math.Sin(d.Real),
{{- range .Axes}}
		Eps{{.Export}}: d.Eps{{.Export}} * dr,
{{- end}}
	}
}

// Cos returns the cosine of d; every field is scaled by -sin of the
// original real part.
func (d {{$n}}) Cos() {{$n}} {
	dr := -math.Sin(d.Real)
	return {{$n}}{
		Real: math.Cos(d.Real),
{{- range .Axes}}
		Eps{{.Export}}: d.Eps{{.Export}} * dr,
{{- end}}
	}
}

// Tan returns the tangent of d, recomposed as Sin/Cos so singularities
// surface through the reciprocal path.
func (d {{$n}}) Tan() {{$n}} {
	return d.Sin().Div(d.Cos())
}
{{end}}`
