package pathgeom

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// ErrInvalidSVGPath is wrapped by all errors returned by [ParseSVGPath].
var ErrInvalidSVGPath = errors.New("invalid SVG path data")

var svgArgCount = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

func skipCommaWhitespace(data []byte) int {
	i := 0
	for i < len(data) {
		switch data[i] {
		case ' ', ',', '\n', '\r', '\t':
			i++
		default:
			return i
		}
	}
	return i
}

func isNumberStart(b byte) bool {
	return b >= '0' && b <= '9' || b == '.' || b == '-' || b == '+'
}

// MustParseSVGPath is like [ParseSVGPath] but panics on error.
func MustParseSVGPath(s string) *Path {
	return must(ParseSVGPath(s))
}

// ParseSVGPath parses SVG path data into a NonZero path.
//
// All SVG commands are supported in their absolute and relative forms.
// Elliptical arcs are converted to cubic Béziers, see [Path.ArcTo]. Errors
// report the 1-based byte position of the offending input.
func ParseSVGPath(s string) (*Path, error) {
	p := NewPath(NonZero)
	data := []byte(s)
	i := skipCommaWhitespace(data)
	if i == len(data) {
		return p, nil
	}
	if data[i] != 'M' && data[i] != 'm' {
		return nil, fmt.Errorf("%w: path must start with a moveto at position %d", ErrInvalidSVGPath, i+1)
	}

	var args [7]float64
	// cur is the current point, mov the start of the subpath, ctrl the last
	// control point for the smooth curve commands.
	var cur, mov, ctrl Point
	prev := byte('z')
	for {
		i += skipCommaWhitespace(data[i:])
		if i >= len(data) {
			break
		}

		cmd := prev
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !isNumberStart(data[i]) {
			cmd = data[i]
			repeat = false
			i++
			i += skipCommaWhitespace(data[i:])
		}
		upper := cmd
		if 'a' <= cmd && cmd <= 'z' {
			upper -= 'a' - 'A'
		}
		n, ok := svgArgCount[upper]
		if !ok {
			pos := i
			if !repeat {
				pos--
			}
			return nil, fmt.Errorf("%w: unsupported command '%c' at position %d", ErrInvalidSVGPath, cmd, pos+1)
		}
		for j := range n {
			if upper == 'A' && (j == 3 || j == 4) {
				// The large-arc and sweep flags may be written without
				// separators.
				if i >= len(data) || (data[i] != '0' && data[i] != '1') {
					return nil, fmt.Errorf("%w: arc flags must be 0 or 1 at position %d", ErrInvalidSVGPath, i+1)
				}
				args[j] = float64(data[i] - '0')
				i++
				i += skipCommaWhitespace(data[i:])
				continue
			}
			num, k := pstrconv.ParseFloat(data[i:])
			if k == 0 {
				return nil, fmt.Errorf("%w: command '%c' needs %d numbers at position %d", ErrInvalidSVGPath, cmd, n, i+1)
			}
			args[j] = num
			i += k
			i += skipCommaWhitespace(data[i:])
		}

		rel := cmd != upper
		abs := func(x, y float64) Point {
			if rel {
				return Pt(cur.X+x, cur.Y+y)
			}
			return Pt(x, y)
		}
		var next Point
		switch upper {
		case 'M':
			next = abs(args[0], args[1])
			p.MoveTo(next)
			mov = next
			// Further coordinate pairs are implicit linetos.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			p.ClosePath()
			next = mov
		case 'L':
			next = abs(args[0], args[1])
			p.LineTo(next)
		case 'H':
			next = Pt(args[0], cur.Y)
			if rel {
				next.X += cur.X
			}
			p.LineTo(next)
		case 'V':
			next = Pt(cur.X, args[0])
			if rel {
				next.Y += cur.Y
			}
			p.LineTo(next)
		case 'C':
			c1 := abs(args[0], args[1])
			ctrl = abs(args[2], args[3])
			next = abs(args[4], args[5])
			p.CubicTo(c1, ctrl, next)
		case 'S':
			c1 := cur
			if strings.IndexByte("CcSs", prev) >= 0 {
				c1 = cur.Translate(cur.Sub(ctrl))
			}
			ctrl = abs(args[0], args[1])
			next = abs(args[2], args[3])
			p.CubicTo(c1, ctrl, next)
		case 'Q':
			ctrl = abs(args[0], args[1])
			next = abs(args[2], args[3])
			p.QuadTo(ctrl, next)
		case 'T':
			c := cur
			if strings.IndexByte("QqTt", prev) >= 0 {
				c = cur.Translate(cur.Sub(ctrl))
			}
			ctrl = c
			next = abs(args[0], args[1])
			p.QuadTo(ctrl, next)
		case 'A':
			next = abs(args[5], args[6])
			rot := args[2] * math.Pi / 180
			p.ArcTo(Vec(args[0], args[1]), rot, args[3] == 1, args[4] == 1, next)
		}
		prev = cmd
		cur = next
	}
	return p, nil
}

// SVGOptions specifies optional settings for [Path.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// String returns the path as SVG path data.
func (p *Path) String() string {
	sb := &strings.Builder{}
	p.WriteSVG(sb, SVGOptions{})
	return sb.String()
}

// WriteSVG writes the path to w as SVG path data, using absolute commands
// only. The winding rule is not part of the output.
func (p *Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		if s == "-0" {
			s = "0"
		}
		return s
	}
	pt := func(pt Point) string {
		return format(pt.X) + "," + format(pt.Y)
	}
	first := true
	for el := range p.Elements() {
		if !first {
			writef(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s", pt(el.To))
		case LineToKind:
			writef("L%s", pt(el.To))
		case QuadToKind:
			writef("Q%s %s", pt(el.Ctrl1), pt(el.To))
		case CubicToKind:
			writef("C%s %s %s", pt(el.Ctrl1), pt(el.Ctrl2), pt(el.To))
		case ClosePathKind:
			writef("Z")
		default:
			panic("unreachable")
		}
		if err != nil {
			return err
		}
	}
	return err
}
