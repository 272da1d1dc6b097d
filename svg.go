package polyline

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"golang.org/x/net/html/charset"
)

// svgTransform is a 2D affine transform with coefficients
//
//	| a c e |
//	| b d f |
//
// as used by SVG transform attributes.
type svgTransform struct {
	a, b, c, d, e, f float64
}

var svgIdentity = svgTransform{a: 1, d: 1}

func (t svgTransform) compose(o svgTransform) svgTransform {
	return svgTransform{
		a: t.a*o.a + t.c*o.b,
		b: t.b*o.a + t.d*o.b,
		c: t.a*o.c + t.c*o.d,
		d: t.b*o.c + t.d*o.d,
		e: t.a*o.e + t.c*o.f + t.e,
		f: t.b*o.e + t.d*o.f + t.f,
	}
}

func (t svgTransform) apply(pt Vec3) Vec3 {
	return Vec3{
		X: t.a*pt.X + t.c*pt.Y + t.e,
		Y: t.b*pt.X + t.d*pt.Y + t.f,
	}
}

// parseSVGTransform parses a transform attribute supporting the translate and
// scale functions. An empty attribute yields the identity.
func parseSVGTransform(s string) (svgTransform, error) {
	out := svgIdentity
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ')' }) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, rawArgs, ok := strings.Cut(part, "(")
		if !ok {
			return svgIdentity, fmt.Errorf("polyline: malformed transform %q", s)
		}
		var args []float64
		for _, a := range strings.FieldsFunc(rawArgs, func(r rune) bool { return r == ',' || r == ' ' }) {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return svgIdentity, fmt.Errorf("polyline: malformed transform argument %q: %w", a, err)
			}
			args = append(args, v)
		}
		switch strings.TrimSpace(name) {
		case "translate":
			if len(args) == 1 {
				args = append(args, 0)
			}
			if len(args) != 2 {
				return svgIdentity, fmt.Errorf("polyline: translate wants 1 or 2 arguments, got %d", len(args))
			}
			out = out.compose(svgTransform{a: 1, d: 1, e: args[0], f: args[1]})
		case "scale":
			if len(args) == 1 {
				args = append(args, args[0])
			}
			if len(args) != 2 {
				return svgIdentity, fmt.Errorf("polyline: scale wants 1 or 2 arguments, got %d", len(args))
			}
			out = out.compose(svgTransform{a: args[0], d: args[1]})
		default:
			return svgIdentity, fmt.Errorf("polyline: unsupported transform function %q", name)
		}
	}
	return out, nil
}

// parsePathData parses the line subset of SVG path data: absolute M, L, and Z
// commands. Implicit line-to coordinates after an M or L are accepted, the
// way SVG defines them.
func parsePathData(d string, xf svgTransform) ([]*Path, error) {
	var out []*Path
	var cur []Vec3
	closed := false
	flush := func() {
		if len(cur) > 0 {
			out = append(out, NewPath(cur, closed))
		}
		cur = nil
		closed = false
	}

	fields := strings.FieldsFunc(d, func(r rune) bool { return r == ' ' || r == ',' || r == '\n' || r == '\t' })
	var pending []float64
	for _, tok := range fields {
		switch tok {
		case "M":
			if len(pending) != 0 {
				return nil, fmt.Errorf("polyline: odd number of coordinates before M")
			}
			flush()
			continue
		case "L":
			if len(pending) != 0 {
				return nil, fmt.Errorf("polyline: odd number of coordinates before L")
			}
			continue
		case "Z", "z":
			if len(pending) != 0 {
				return nil, fmt.Errorf("polyline: odd number of coordinates before Z")
			}
			closed = true
			flush()
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("polyline: unsupported path data token %q", tok)
		}
		pending = append(pending, v)
		if len(pending) == 2 {
			cur = append(cur, xf.apply(V2(pending[0], pending[1])))
			pending = pending[:0]
		}
	}
	if len(pending) != 0 {
		return nil, fmt.Errorf("polyline: stray coordinate in path data")
	}
	flush()
	return out, nil
}

// parsePoints parses a polyline/polygon points attribute.
func parsePoints(s string, xf svgTransform) ([]Vec3, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\n' || r == '\t' })
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("polyline: odd number of coordinates in points attribute")
	}
	var pts []Vec3
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, err
		}
		pts = append(pts, xf.apply(V2(x, y)))
	}
	return pts, nil
}

func parseElement(e *svgparser.Element, xf svgTransform, out []*Path) ([]*Path, error) {
	for _, c := range e.Children {
		switch c.Name {
		case "g":
			gxf, err := parseSVGTransform(c.Attributes["transform"])
			if err != nil {
				return nil, err
			}
			out, err = parseElement(c, xf.compose(gxf), out)
			if err != nil {
				return nil, err
			}
		case "path":
			paths, err := parsePathData(c.Attributes["d"], xf)
			if err != nil {
				return nil, err
			}
			out = append(out, paths...)
		case "line":
			var pts [4]float64
			for i, attr := range [...]string{"x1", "y1", "x2", "y2"} {
				v, err := strconv.ParseFloat(c.Attributes[attr], 64)
				if err != nil {
					return nil, fmt.Errorf("polyline: bad line attribute %s: %w", attr, err)
				}
				pts[i] = v
			}
			out = append(out, NewPath([]Vec3{
				xf.apply(V2(pts[0], pts[1])),
				xf.apply(V2(pts[2], pts[3])),
			}, false))
		case "polyline", "polygon":
			pts, err := parsePoints(c.Attributes["points"], xf)
			if err != nil {
				return nil, err
			}
			if len(pts) > 0 {
				out = append(out, NewPath(pts, c.Name == "polygon"))
			}
		case "defs":
			continue
		default:
			// Unsupported elements (text, images, curves) are skipped.
			continue
		}
	}
	return out, nil
}

// FromSVG parses an SVG document, extracting the line geometry of path, line,
// polyline, and polygon elements into paths in the horizontal plane. Group
// transforms of the translate and scale kind are applied. This provides only
// limited SVG support; curve commands and other element kinds are rejected or
// skipped.
func FromSVG(r io.Reader) ([]*Path, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	decoder.CharsetReader = charset.NewReaderLabel
	elt, err := svgparser.DecodeFirst(decoder)
	if err != nil {
		return nil, err
	}
	if err := elt.Decode(decoder); err != nil && err != io.EOF {
		return nil, err
	}
	return parseElement(elt, svgIdentity, nil)
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the paths to an SVG document with one path element per path.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(paths []*Path, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, paths, opts)
	return sb.String()
}

// WriteSVG converts the paths to an SVG document with one path element per
// path and writes it to w. The document's view box is the union of the paths'
// bounding boxes; Z components are dropped.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, paths []*Path, opts SVGOptions) error {
	var box Box
	for i, p := range paths {
		if i == 0 {
			box = p.BoundingBox()
		} else {
			box = box.Union(p.BoundingBox())
		}
	}

	bw := bufio.NewWriter(w)
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(bw, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		s = strings.TrimRight(s, "0")
		return strings.TrimRight(s, ".")
	}

	size := box.Size()
	writef(`<svg width="%s" height="%s" viewBox="%s %s %s %s" version="1.1" xmlns="http://www.w3.org/2000/svg">`,
		format(size.X), format(size.Y),
		format(box.Min.X), format(box.Min.Y), format(size.X), format(size.Y))
	writef("\n<g fill=\"none\" stroke=\"black\">\n")
	for _, p := range paths {
		verts := p.Vertices()
		if len(verts) == 0 {
			continue
		}
		writef(`<path d="`)
		for i, v := range verts {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			writef("%s %s,%s ", cmd, format(v.X), format(v.Y))
		}
		if p.Closed() {
			writef("Z")
		}
		writef("\"/>\n")
	}
	writef("</g>\n</svg>\n")
	if err == nil {
		err = bw.Flush()
	}
	return err
}
