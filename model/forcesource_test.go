package model

import (
	"strings"
	"testing"
)

func TestForceSource_Views(t *testing.T) {
	f := NewForceSource(10, 20, Depth(1000), 1, 2, 3)

	if got, want := f.ForceTPR(), [3]float64{2, 3, 1}; got != want {
		t.Errorf("ForceTPR() = %v, want %v", got, want)
	}

	// Known-suspicious duplication: the "rtp" view returns the same t, p, r
	// ordering as ForceTPR instead of [Fr, Ft, Fp]. Asserted here so a
	// future reordering shows up as a deliberate test change.
	if got := f.ForceRTP(); got != f.ForceTPR() {
		t.Errorf("ForceRTP() = %v, expected the documented duplicate of ForceTPR() %v", got, f.ForceTPR())
	}
}

func TestForceSource_Defaults(t *testing.T) {
	f := &ForceSource{GeoPoint: GeoPoint{Latitude: 5, Longitude: 6}}
	if f.Fr != 0 || f.Ft != 0 || f.Fp != 0 {
		t.Errorf("zero value force components = %v %v %v, want all 0", f.Fr, f.Ft, f.Fp)
	}
}

func TestForceSource_Equal(t *testing.T) {
	a := NewForceSource(1, 2, nil, 3, 4, 5)
	b := NewForceSource(1, 2, nil, 3, 4, 5)
	if !a.Equal(b) {
		t.Fatalf("identical force sources should be equal")
	}

	mutations := map[string]*ForceSource{
		"Fr":    NewForceSource(1, 2, nil, 9, 4, 5),
		"Ft":    NewForceSource(1, 2, nil, 3, 9, 5),
		"Fp":    NewForceSource(1, 2, nil, 3, 4, 9),
		"depth": NewForceSource(1, 2, Depth(1), 3, 4, 5),
	}
	for name, other := range mutations {
		if a.Equal(other) {
			t.Errorf("changing %s should break equality", name)
		}
	}
}

func TestForceSource_String(t *testing.T) {
	f := NewForceSource(1.04, 2.06, nil, 1e10, 0, 0)
	out := f.String()
	for _, want := range []string{
		"longitude :    2.1 deg",
		"latitude  :    1.0 deg",
		"Fr        :   1.00e+10 N",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q in:\n%s", want, out)
		}
	}
}
