package parse

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wavefieldlabs/seisdb/model"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseSource_FormatSniffing(t *testing.T) {
	fromCMT, err := ParseSource(writeTemp(t, "CMTSOLUTION", sampleCMTSolution))
	if err != nil {
		t.Fatalf("ParseSource(CMTSOLUTION): %v", err)
	}
	fromQML, err := ParseSource(writeTemp(t, "event.xml", sampleQuakeML))
	if err != nil {
		t.Fatalf("ParseSource(QuakeML): %v", err)
	}

	// Both fixtures describe the same event; the geometry must agree no
	// matter which format carried it.
	if !fromCMT.GeoPoint.Equal(fromQML.GeoPoint) {
		t.Errorf("CMT position %+v != QuakeML position %+v", fromCMT.GeoPoint, fromQML.GeoPoint)
	}
}

func TestParseSource_Unparseable(t *testing.T) {
	_, err := ParseSource(writeTemp(t, "noise.txt", "not seismology\n"))
	if !errors.Is(err, ErrUnparseable) {
		t.Fatalf("err = %v, want ErrUnparseable", err)
	}
}

func TestParseReceivers_FormatSniffing(t *testing.T) {
	fromStations, err := ParseReceivers(writeTemp(t, "STATIONS", sampleStations))
	if err != nil {
		t.Fatalf("ParseReceivers(STATIONS): %v", err)
	}
	fromXML, err := ParseReceivers(writeTemp(t, "inv.xml", sampleStationXML))
	if err != nil {
		t.Fatalf("ParseReceivers(StationXML): %v", err)
	}
	if len(fromStations) != 2 || len(fromXML) != 2 {
		t.Fatalf("got %d / %d receivers, want 2 / 2", len(fromStations), len(fromXML))
	}
}

func TestParseReceivers_Deduplicates(t *testing.T) {
	doubled := sampleStations + sampleStations
	receivers, err := ParseReceivers(writeTemp(t, "STATIONS", doubled))
	if err != nil {
		t.Fatalf("ParseReceivers: %v", err)
	}
	if len(receivers) != 2 {
		t.Fatalf("got %d receivers after dedup, want 2", len(receivers))
	}
	// First occurrences survive in order.
	if receivers[0].Station != "ANMO" || receivers[1].Station != "COLA" {
		t.Errorf("dedup changed ordering: %v, %v", receivers[0].Code(), receivers[1].Code())
	}
}

func TestReceiversFromBytes_PropagatesInconsistency(t *testing.T) {
	inconsistent := `<FDSNStationXML><Network code="IU"><Station code="ANMO">
<Latitude>1</Latitude><Longitude>2</Longitude>
<Channel code="BHZ"><Latitude>1</Latitude><Longitude>2</Longitude></Channel>
<Channel code="BHN"><Latitude>9</Latitude><Longitude>2</Longitude></Channel>
</Station></Network></FDSNStationXML>`

	_, err := ReceiversFromBytes([]byte(inconsistent))
	if !errors.Is(err, ErrInconsistentCoordinates) {
		t.Fatalf("err = %v, want ErrInconsistentCoordinates (not retried as another format)", err)
	}
}

func TestDedupReceivers_KeepsDistinctStations(t *testing.T) {
	a := model.NewReceiver(1, 2, "IU", "ANMO", nil)
	b := model.NewReceiver(1, 2, "IU", "COLA", nil)
	got := dedupReceivers([]model.Receiver{a, b, a, b, a})
	if len(got) != 2 {
		t.Fatalf("got %d receivers, want 2", len(got))
	}
	if !got[0].Equal(a) || !got[1].Equal(b) {
		t.Errorf("dedup reordered receivers: %v", got)
	}
}
