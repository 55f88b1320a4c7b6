package geo

import (
	"fmt"
	"math"
	"strings"
)

// NauticalMilesPerRadian converts a central angle to nautical miles:
// one arcminute of great circle is one nautical mile.
const NauticalMilesPerRadian = 180 * 60 / math.Pi

// Formula returns the central angle, in radians, between two coordinates.
// The formulas here clamp the haversine term to [0, 1], so near-antipodal
// points and out-of-range latitudes never produce NaN.
type Formula func(p1, p2 Coordinate) float64

// LegacyFormula is the great-circle variant the distance figures have
// always been produced with. The latitude term is sin(Δlat)/2 rather than
// sin(Δlat/2), so it drifts from Haversine as the latitude gap grows.
func LegacyFormula(p1, p2 Coordinate) float64 {
	a := math.Sin(p1.lat-p2.lat) / 2
	b := math.Sin((p1.lon - p2.lon) / 2)
	return centralAngle(a*a + math.Cos(p1.lat)*math.Cos(p2.lat)*b*b)
}

// Haversine is the canonical haversine central angle.
func Haversine(p1, p2 Coordinate) float64 {
	dLat := math.Sin((p1.lat - p2.lat) / 2)
	dLon := math.Sin((p1.lon - p2.lon) / 2)
	return centralAngle(dLat*dLat + math.Cos(p1.lat)*math.Cos(p2.lat)*dLon*dLon)
}

// centralAngle turns a haversine term into an angle. A latitude beyond ±90°
// makes the cosine product negative, which can take h below 0.
func centralAngle(h float64) float64 {
	return 2 * math.Asin(math.Sqrt(math.Max(0, math.Min(h, 1))))
}

// FormulaByName maps "legacy" (or "") and "haversine" to their Formula.
func FormulaByName(name string) (Formula, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "legacy":
		return LegacyFormula, nil
	case "haversine":
		return Haversine, nil
	}
	return nil, fmt.Errorf("unknown distance formula %q", name)
}

// ToRadians converts decimal degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegrees converts radians to decimal degrees.
func ToDegrees(rad float64) float64 {
	return rad / math.Pi * 180
}

func nauticalMiles(f Formula, p1, p2 Coordinate) float64 {
	if f == nil {
		f = LegacyFormula
	}
	return f(p1, p2) * NauticalMilesPerRadian
}
