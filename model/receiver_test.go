package model

import (
	"strings"
	"testing"
)

func TestReceiver_Code(t *testing.T) {
	r := NewReceiver(0, 0, "IU", "ANMO", nil)
	if got := r.Code(); got != "IU.ANMO" {
		t.Errorf("Code() = %q, want %q", got, "IU.ANMO")
	}

	empty := Receiver{}
	if got := empty.Code(); got != "." {
		t.Errorf("Code() of zero receiver = %q, want %q", got, ".")
	}
}

func TestReceiver_Equal(t *testing.T) {
	a := NewReceiver(34.9, -106.5, "IU", "ANMO", nil)

	if !a.Equal(NewReceiver(34.9, -106.5, "IU", "ANMO", nil)) {
		t.Fatalf("identical receivers should be equal")
	}

	cases := map[string]Receiver{
		"station":   NewReceiver(34.9, -106.5, "IU", "COLA", nil),
		"network":   NewReceiver(34.9, -106.5, "II", "ANMO", nil),
		"latitude":  NewReceiver(35.0, -106.5, "IU", "ANMO", nil),
		"longitude": NewReceiver(34.9, -106.0, "IU", "ANMO", nil),
		"depth":     NewReceiver(34.9, -106.5, "IU", "ANMO", Depth(100)),
	}
	for name, other := range cases {
		if a.Equal(other) {
			t.Errorf("changing %s should break duplicate identity", name)
		}
	}
}

func TestReceiver_String(t *testing.T) {
	r := NewReceiver(34.95, -106.46, "IU", "ANMO", nil)
	out := r.String()
	for _, want := range []string{
		"name      : ANMO",
		"network   : IU",
		"latitude  :   34.9",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q in:\n%s", want, out)
		}
	}
}
