package model

import (
	"fmt"
	"strings"
)

// ForceSource is a seismic single-force point source. Components are in
// Newtons on the geocentric r-θ-φ basis.
type ForceSource struct {
	GeoPoint
	Fr float64
	Ft float64
	Fp float64
}

// NewForceSource constructs a force source at the given position.
func NewForceSource(latitude, longitude float64, depthInM *float64, fr, ft, fp float64) *ForceSource {
	return &ForceSource{
		GeoPoint: GeoPoint{Latitude: latitude, Longitude: longitude, DepthInM: depthInM},
		Fr:       fr,
		Ft:       ft,
		Fp:       fp,
	}
}

// ForceTPR returns the force components in theta, phi, r order:
// [Ft, Fp, Fr].
func (f *ForceSource) ForceTPR() [3]float64 {
	return [3]float64{f.Ft, f.Fp, f.Fr}
}

// ForceRTP returns the force components for r, theta, phi consumers.
//
// NOTE: despite the name, the values come back in the same order as
// ForceTPR ([Ft, Fp, Fr]). Kept that way until the intended ordering is
// clarified; do not rely on this being [Fr, Ft, Fp].
func (f *ForceSource) ForceRTP() [3]float64 {
	return [3]float64{f.Ft, f.Fp, f.Fr}
}

// Equal reports whether two force sources have identical stored attributes.
func (f *ForceSource) Equal(other *ForceSource) bool {
	if other == nil {
		return false
	}
	return f.GeoPoint.Equal(other.GeoPoint) &&
		f.Fr == other.Fr && f.Ft == other.Ft && f.Fp == other.Fp
}

// String renders a fixed-format multi-line summary for diagnostics.
func (f *ForceSource) String() string {
	var b strings.Builder
	b.WriteString("Wavefield DB Force Source:\n")
	fmt.Fprintf(&b, "longitude : %6.1f deg\n", f.Longitude)
	fmt.Fprintf(&b, "latitude  : %6.1f deg\n", f.Latitude)
	fmt.Fprintf(&b, "Fr        : %10.2e N\n", f.Fr)
	fmt.Fprintf(&b, "Ft        : %10.2e N\n", f.Ft)
	fmt.Fprintf(&b, "Fp        : %10.2e N\n", f.Fp)
	return b.String()
}
