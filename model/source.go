package model

import (
	"fmt"
	"math"
	"strings"
)

// Source is a seismic moment-tensor point source, optionally carrying a
// source time function (sliprate). Tensor components are in N·m on the
// geocentric r-θ-φ basis.
type Source struct {
	GeoPoint
	Mrr float64
	Mtt float64
	Mpp float64
	Mrt float64
	Mrp float64
	Mtp float64

	// TimeShift is a correction of the origin time in seconds; nil means no
	// shift. Mainly useful in the context of finite sources.
	TimeShift *float64

	// Sliprate is the (normalized) source time function sampled at interval
	// DT seconds. When Sliprate is set, DT must be positive.
	Sliprate []float64
	DT       float64
}

// NewSource constructs a moment-tensor source at the given position. Tensor
// components follow in r-θ-φ order, N·m.
func NewSource(latitude, longitude float64, depthInM *float64, mrr, mtt, mpp, mrt, mrp, mtp float64) *Source {
	return &Source{
		GeoPoint: GeoPoint{Latitude: latitude, Longitude: longitude, DepthInM: depthInM},
		Mrr:      mrr,
		Mtt:      mtt,
		Mpp:      mpp,
		Mrt:      mrt,
		Mrp:      mrp,
		Mtp:      mtp,
	}
}

// NewSourceFromStrikeDipRake constructs a double-couple source from a shear
// fault parameterized by strike, dip and rake (degrees) and scalar moment m0
// (N·m).
//
// The formulas (Udias 17.24) are stated in the geographic North-East-Down
// system, which maps to the geocentric basis as
// Mtt = Mxx, Mpp = Myy, Mrr = Mzz, Mrp = -Myz, Mrt = Mxz, Mtp = -Mxy.
// NaN angles propagate into the tensor, they are not rejected.
func NewSourceFromStrikeDipRake(latitude, longitude float64, depthInM *float64, strike, dip, rake, m0 float64) *Source {
	phi := deg2rad(strike)
	delta := deg2rad(dip)
	lambda := deg2rad(rake)

	mtt := (-math.Sin(delta)*math.Cos(lambda)*math.Sin(2*phi) -
		math.Sin(2*delta)*math.Sin(phi)*math.Sin(phi)*math.Sin(lambda)) * m0

	mpp := (math.Sin(delta)*math.Cos(lambda)*math.Sin(2*phi) -
		math.Sin(2*delta)*math.Cos(phi)*math.Cos(phi)*math.Sin(lambda)) * m0

	mrr := math.Sin(2*delta) * math.Sin(lambda) * m0

	mrp := (-math.Cos(phi)*math.Sin(lambda)*math.Cos(2*delta) +
		math.Cos(delta)*math.Cos(lambda)*math.Sin(phi)) * m0

	mrt := (-math.Sin(lambda)*math.Sin(phi)*math.Cos(2*delta) -
		math.Cos(delta)*math.Cos(lambda)*math.Cos(phi)) * m0

	mtp := (-math.Sin(delta)*math.Cos(lambda)*math.Cos(2*phi) -
		math.Sin(2*delta)*math.Sin(2*phi)*math.Sin(lambda)/2) * m0

	return NewSource(latitude, longitude, depthInM, mrr, mtt, mpp, mrt, mrp, mtp)
}

// Tensor returns the six moment-tensor components in r, theta, phi order:
// [Mrr, Mtt, Mpp, Mrt, Mrp, Mtp].
func (s *Source) Tensor() [6]float64 {
	return [6]float64{s.Mrr, s.Mtt, s.Mpp, s.Mrt, s.Mrp, s.Mtp}
}

// TensorVoigt returns the components in theta, phi, r Voigt notation:
// [Mtt, Mpp, Mrr, Mrp, Mrt, Mtp].
func (s *Source) TensorVoigt() [6]float64 {
	return [6]float64{s.Mtt, s.Mpp, s.Mrr, s.Mrp, s.Mrt, s.Mtp}
}

// SetSliprate attaches a source time function sampled at dt seconds. The
// input is copied. When normalize is true every sample is divided by the
// trapezoidal-rule integral of the array over spacing dt, so the stored
// function integrates to one; a zero integral yields infinities per IEEE
// semantics and is a caller error. timeShift replaces the stored shift and
// may be nil.
func (s *Source) SetSliprate(values []float64, dt float64, timeShift *float64, normalize bool) {
	sliprate := make([]float64, len(values))
	copy(sliprate, values)
	if normalize {
		integral := Trapz(values, dt)
		for i := range sliprate {
			sliprate[i] /= integral
		}
	}
	s.Sliprate = sliprate
	s.DT = dt
	s.TimeShift = timeShift
}

// ResampleSliprate regenerates the sliprate at sampling interval dt with
// nsamp samples using linear interpolation over the old time axis. Both
// axes start at zero and exclude their endpoint; new samples beyond the old
// axis clamp to the boundary value. Sliprate and DT are replaced in place,
// TimeShift is untouched. A sliprate and DT must already be set.
func (s *Source) ResampleSliprate(dt float64, nsamp int) {
	tOld := timeAxis(s.DT, len(s.Sliprate))
	tNew := timeAxis(dt, nsamp)
	s.Sliprate = Interp(tNew, tOld, s.Sliprate)
	s.DT = dt
}

// Equal reports whether two sources have identical stored attributes,
// including the sliprate samples. Exact float comparison throughout.
func (s *Source) Equal(other *Source) bool {
	if other == nil {
		return false
	}
	if !s.GeoPoint.Equal(other.GeoPoint) {
		return false
	}
	if s.Mrr != other.Mrr || s.Mtt != other.Mtt || s.Mpp != other.Mpp ||
		s.Mrt != other.Mrt || s.Mrp != other.Mrp || s.Mtp != other.Mtp {
		return false
	}
	if !equalOptFloat(s.TimeShift, other.TimeShift) {
		return false
	}
	if s.DT != other.DT {
		return false
	}
	return equalFloats(s.Sliprate, other.Sliprate)
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders a fixed-format multi-line summary for diagnostics.
func (s *Source) String() string {
	var b strings.Builder
	b.WriteString("Wavefield DB Source:\n")
	fmt.Fprintf(&b, "longitude : %6.1f deg\n", s.Longitude)
	fmt.Fprintf(&b, "latitude  : %6.1f deg\n", s.Latitude)
	fmt.Fprintf(&b, "Mrr       : %10.2e Nm\n", s.Mrr)
	fmt.Fprintf(&b, "Mtt       : %10.2e Nm\n", s.Mtt)
	fmt.Fprintf(&b, "Mpp       : %10.2e Nm\n", s.Mpp)
	fmt.Fprintf(&b, "Mrt       : %10.2e Nm\n", s.Mrt)
	fmt.Fprintf(&b, "Mrp       : %10.2e Nm\n", s.Mrp)
	fmt.Fprintf(&b, "Mtp       : %10.2e Nm\n", s.Mtp)
	return b.String()
}
