package model

import "math"

// DefaultPlanetRadiusM is the mean Earth radius in metres, used by callers
// that do not care about a specific planet model.
const DefaultPlanetRadiusM = 6371000.0

// GeoPoint is a geographic point on a spherical planet: latitude and
// longitude in degrees, depth in metres below the reference surface. A nil
// depth means the point sits exactly on the reference surface.
//
// GeoPoint is a plain value; it is immutable after construction. Callers are
// responsible for keeping planetRadius - depth non-negative, the projections
// do not check.
type GeoPoint struct {
	Latitude  float64  // degrees, [-90, 90]
	Longitude float64  // degrees, [-180, 180] or [0, 360)
	DepthInM  *float64 // metres below the reference surface; nil = surface
}

// Depth returns a pointer to m, for filling the optional DepthInM field.
func Depth(m float64) *float64 { return &m }

// Colatitude returns 90 - latitude in degrees.
func (p GeoPoint) Colatitude() float64 { return 90.0 - p.Latitude }

// ColatitudeRad returns the colatitude in radians.
func (p GeoPoint) ColatitudeRad() float64 { return deg2rad(90.0 - p.Latitude) }

// LatitudeRad returns the latitude in radians.
func (p GeoPoint) LatitudeRad() float64 { return deg2rad(p.Latitude) }

// LongitudeRad returns the longitude in radians.
func (p GeoPoint) LongitudeRad() float64 { return deg2rad(p.Longitude) }

// RadiusInM returns the distance of the point from the planet centre for the
// given planet radius in metres. A nil depth places the point on the
// reference surface; a negative depth places it above.
func (p GeoPoint) RadiusInM(planetRadius float64) float64 {
	if p.DepthInM == nil {
		return planetRadius
	}
	return planetRadius - *p.DepthInM
}

// X returns the Cartesian x coordinate of the point in metres, with the
// x axis through (lat 0, lon 0) and z toward the north pole.
func (p GeoPoint) X(planetRadius float64) float64 {
	return math.Cos(p.LatitudeRad()) * math.Cos(p.LongitudeRad()) * p.RadiusInM(planetRadius)
}

// Y returns the Cartesian y coordinate of the point in metres.
func (p GeoPoint) Y(planetRadius float64) float64 {
	return math.Cos(p.LatitudeRad()) * math.Sin(p.LongitudeRad()) * p.RadiusInM(planetRadius)
}

// Z returns the Cartesian z coordinate of the point in metres (toward the
// pole; x = y = 0 at lat ±90).
func (p GeoPoint) Z(planetRadius float64) float64 {
	return math.Sin(p.LatitudeRad()) * p.RadiusInM(planetRadius)
}

// Equal reports whether two points have identical stored attributes. The
// comparison is exact, no floating tolerance is applied. Depths compare
// equal when both are nil or both point at the same value.
func (p GeoPoint) Equal(other GeoPoint) bool {
	if p.Latitude != other.Latitude || p.Longitude != other.Longitude {
		return false
	}
	return equalOptFloat(p.DepthInM, other.DepthInM)
}

func equalOptFloat(a, b *float64) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func deg2rad(deg float64) float64 { return deg * math.Pi / 180.0 }
