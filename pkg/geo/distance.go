package geo

import "strconv"

// DisplayPrecision is the number of decimals distances are printed with.
const DisplayPrecision = 2

// Distance is the great-circle distance between two coordinates, computed
// once at construction.
type Distance struct {
	p1 Coordinate
	p2 Coordinate
	nm float64
}

// NewDistance measures p1 to p2 with LegacyFormula.
func NewDistance(p1, p2 Coordinate) Distance {
	return NewDistanceWith(LegacyFormula, p1, p2)
}

// NewDistanceWith measures p1 to p2 with f. A nil f means LegacyFormula.
func NewDistanceWith(f Formula, p1, p2 Coordinate) Distance {
	return Distance{p1: p1, p2: p2, nm: nauticalMiles(f, p1, p2)}
}

// ComputeDistance measures p1 to p2 and returns nautical miles to two
// decimals without keeping a Distance around.
func ComputeDistance(p1, p2 Coordinate) string {
	return formatNM(nauticalMiles(LegacyFormula, p1, p2), DisplayPrecision)
}

// Between ignores the receiver and behaves as ComputeDistance.
func (Distance) Between(p1, p2 Coordinate) string {
	return ComputeDistance(p1, p2)
}

// P1 returns the origin.
func (d Distance) P1() Coordinate { return d.p1 }

// P2 returns the destination.
func (d Distance) P2() Coordinate { return d.p2 }

// NauticalMiles returns the stored distance.
func (d Distance) NauticalMiles() float64 { return d.nm }

func (d Distance) Less(other Distance) bool           { return d.nm < other.nm }
func (d Distance) LessOrEqual(other Distance) bool    { return d.nm <= other.nm }
func (d Distance) Greater(other Distance) bool        { return d.nm > other.nm }
func (d Distance) GreaterOrEqual(other Distance) bool { return d.nm >= other.nm }

// Equal compares the stored distances only; the endpoints are ignored.
func (d Distance) Equal(other Distance) bool { return d.nm == other.nm }

// Compare returns -1, 0 or +1. It is usable with slices.SortFunc.
func (d Distance) Compare(other Distance) int {
	switch {
	case d.nm < other.nm:
		return -1
	case d.nm > other.nm:
		return 1
	default:
		return 0
	}
}

// Display renders the distance with the given number of decimals.
func (d Distance) Display(precision int) string {
	return formatNM(d.nm, precision)
}

// String returns the distance in nautical miles to two decimals.
func (d Distance) String() string {
	return formatNM(d.nm, DisplayPrecision)
}

// GoString names both endpoints,
// e.g. "MagicDistance((40° 38′ N, 73° 47′ W) ==> (33° 56′ N, 118° 25′ W))".
func (d Distance) GoString() string {
	return "MagicDistance((" + d.p1.Coordinates() + ") ==> (" + d.p2.Coordinates() + "))"
}

func formatNM(nm float64, precision int) string {
	return strconv.FormatFloat(nm, 'f', precision, 64)
}
