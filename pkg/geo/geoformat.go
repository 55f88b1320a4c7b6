package geo

import (
	"fmt"
	"regexp"
	"strconv"
)

var floatSpec = regexp.MustCompile(`^\.(\d+)f$`)

// FormatSpec renders c according to a format-spec string:
//
//	""     the degree/minute form from Coordinates
//	".Nf"  radians with N decimals, as Repr(N)
//	other  radians with every significant digit
func (c Coordinate) FormatSpec(spec string) string {
	if spec == "" {
		return c.Coordinates()
	}
	if m := floatSpec.FindStringSubmatch(spec); m != nil {
		if precision, err := strconv.Atoi(m[1]); err == nil {
			return c.Repr(precision)
		}
	}
	return c.Repr(-1)
}

// Format implements fmt.Formatter. %v and %s print Coordinates, %#v prints
// GoString, %.Nf prints radians with N decimals and a bare %f prints them
// in full.
func (c Coordinate) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			fmt.Fprint(f, c.GoString())
			return
		}
		fmt.Fprint(f, c.Coordinates())
	case 's':
		fmt.Fprint(f, c.Coordinates())
	case 'f', 'F':
		if precision, ok := f.Precision(); ok {
			fmt.Fprint(f, c.Repr(precision))
			return
		}
		fmt.Fprint(f, c.Repr(-1))
	default:
		fmt.Fprintf(f, "%%!%c(geo.Coordinate=%s)", verb, c.Coordinates())
	}
}
