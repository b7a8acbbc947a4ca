package model

import (
	"fmt"
	"strings"
)

// Receiver is a seismic receiver: a geographic point plus network and
// station identifiers. Two receivers with equal stored attributes
// (identifiers included) are duplicates of each other.
type Receiver struct {
	GeoPoint
	Network string
	Station string
}

// NewReceiver constructs a receiver. Empty identifiers are legal.
func NewReceiver(latitude, longitude float64, network, station string, depthInM *float64) Receiver {
	return Receiver{
		GeoPoint: GeoPoint{Latitude: latitude, Longitude: longitude, DepthInM: depthInM},
		Network:  network,
		Station:  station,
	}
}

// Code returns the NET.STA identifier of the receiver.
func (r Receiver) Code() string { return r.Network + "." + r.Station }

// Equal reports whether two receivers have identical stored attributes.
func (r Receiver) Equal(other Receiver) bool {
	return r.GeoPoint.Equal(other.GeoPoint) &&
		r.Network == other.Network && r.Station == other.Station
}

// String renders a fixed-format multi-line summary for diagnostics.
func (r Receiver) String() string {
	var b strings.Builder
	b.WriteString("Wavefield DB Receiver:\n")
	fmt.Fprintf(&b, "longitude : %6.1f deg\n", r.Longitude)
	fmt.Fprintf(&b, "latitude  : %6.1f deg\n", r.Latitude)
	fmt.Fprintf(&b, "name      : %s\n", r.Station)
	fmt.Fprintf(&b, "network   : %s\n", r.Network)
	return b.String()
}
