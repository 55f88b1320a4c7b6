// Package geo models points on the Earth's surface and the great-circle
// distances between them, treating the Earth as a sphere.
package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Positions of the components in a pair passed to ParseCoordinate.
const (
	LatitudeIndex  = 0
	LongitudeIndex = 1
)

// DefaultReprPrecision is the number of decimals GoString renders radians with.
const DefaultReprPrecision = 5

// Coordinate is a point on the Earth's surface. Latitude and longitude are
// held in radians. Range is not checked: out-of-range input yields
// mathematically valid but geographically meaningless results.
type Coordinate struct {
	lat float64
	lon float64
}

// NewCoordinate builds a Coordinate from decimal degrees.
func NewCoordinate(latDeg, lonDeg float64) Coordinate {
	return Coordinate{lat: ToRadians(latDeg), lon: ToRadians(lonDeg)}
}

// ParseCoordinate builds a Coordinate from a decimal-degree pair
// ordered latitude, longitude.
func ParseCoordinate(pair [2]string) (Coordinate, error) {
	lat, err := parseComponent("latitude", pair[LatitudeIndex])
	if err != nil {
		return Coordinate{}, err
	}
	lon, err := parseComponent("longitude", pair[LongitudeIndex])
	if err != nil {
		return Coordinate{}, err
	}
	return NewCoordinate(lat, lon), nil
}

// ParseLatLon parses a "lat,lon" string such as "40.641108,-73.778246".
func ParseLatLon(s string) (Coordinate, error) {
	lat, lon, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinate{}, &ParseError{Field: "pair", Value: s}
	}
	return ParseCoordinate([2]string{lat, lon})
}

func parseComponent(field, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &ParseError{Field: field, Value: value, Err: err}
	}
	return f, nil
}

// Latitude returns the latitude in radians.
func (c Coordinate) Latitude() float64 { return c.lat }

// Longitude returns the longitude in radians.
func (c Coordinate) Longitude() float64 { return c.lon }

// LatitudeDegrees returns the latitude in decimal degrees.
func (c Coordinate) LatitudeDegrees() float64 { return ToDegrees(c.lat) }

// LongitudeDegrees returns the longitude in decimal degrees.
func (c Coordinate) LongitudeDegrees() float64 { return ToDegrees(c.lon) }

// Equal reports whether both radian values are exactly equal.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.lat == other.lat && c.lon == other.lon
}

// DistanceTo returns the great-circle distance to other in nautical miles.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	return nauticalMiles(LegacyFormula, c, other)
}

// Sub returns the Distance from c to other.
func (c Coordinate) Sub(other Coordinate) Distance {
	return NewDistance(c, other)
}

// Coordinates renders the point as degrees, whole minutes and hemisphere,
// e.g. "40° 38′ N, 73° 47′ W".
func (c Coordinate) Coordinates() string {
	return formatAxis(c.LatitudeDegrees(), 'N', 'S') + ", " + formatAxis(c.LongitudeDegrees(), 'E', 'W')
}

func formatAxis(deg float64, pos, neg byte) string {
	dir := pos
	if deg < 0 {
		dir = neg
	}
	d, m := degreesMinutes(deg)
	return fmt.Sprintf("%d° %d′ %c", d, m, dir)
}

// degreesMinutes splits |deg| into whole degrees and rounded minutes.
func degreesMinutes(deg float64) (int, int) {
	mag := math.Abs(deg)
	whole := math.Trunc(mag)
	minutes := math.Round((mag - whole) * 60)
	if minutes >= 60 {
		whole++
		minutes = 0
	}
	return int(whole), int(minutes)
}

// String implements fmt.Stringer.
func (c Coordinate) String() string {
	return c.Coordinates()
}

// GoString renders the radians at DefaultReprPrecision, e.g.
// "Point(0.70932, -1.28767)".
func (c Coordinate) GoString() string {
	return c.Repr(DefaultReprPrecision)
}

// Repr renders the radians as "Point(lat, lon)" with the given number of
// decimals. A negative precision prints every significant digit.
func (c Coordinate) Repr(precision int) string {
	return "Point(" + strconv.FormatFloat(c.lat, 'f', precision, 64) +
		", " + strconv.FormatFloat(c.lon, 'f', precision, 64) + ")"
}
