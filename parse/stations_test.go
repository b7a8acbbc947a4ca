package parse

import (
	"strings"
	"testing"
)

const sampleStations = `ANMO  IU  34.94591  -106.45720  1820.0  100.0
COLA  IU  64.87360  -147.86160    80.0    0.0
`

func TestReceiversFromStationsFile(t *testing.T) {
	receivers, err := ReceiversFromStationsFile(strings.NewReader(sampleStations))
	if err != nil {
		t.Fatalf("ReceiversFromStationsFile: %v", err)
	}
	if len(receivers) != 2 {
		t.Fatalf("got %d receivers, want 2", len(receivers))
	}

	anmo := receivers[0]
	if anmo.Station != "ANMO" || anmo.Network != "IU" {
		t.Errorf("receiver[0] = %s.%s, want IU.ANMO", anmo.Network, anmo.Station)
	}
	if anmo.Latitude != 34.94591 || anmo.Longitude != -106.4572 {
		t.Errorf("receiver[0] position = (%v, %v)", anmo.Latitude, anmo.Longitude)
	}
	if anmo.DepthInM != nil {
		t.Errorf("STATIONS receivers must have nil depth, got %v", *anmo.DepthInM)
	}
}

func TestReceiversFromStationsFile_SkipsBlankLines(t *testing.T) {
	in := "\nANMO IU 1.0 2.0 0 0\n\nCOLA IU 3.0 4.0 0 0\n\n"
	receivers, err := ReceiversFromStationsFile(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReceiversFromStationsFile: %v", err)
	}
	if len(receivers) != 2 {
		t.Fatalf("got %d receivers, want 2", len(receivers))
	}
}

func TestReceiversFromStationsFile_Malformed(t *testing.T) {
	cases := map[string]string{
		"wrong field count": "ANMO IU 1.0 2.0 0\n",
		"bad latitude":      "ANMO IU north 2.0 0 0\n",
		"empty input":       "",
	}
	for name, in := range cases {
		if _, err := ReceiversFromStationsFile(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
