package parse

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/wavefieldlabs/seisdb/model"
)

// XML shapes for the QuakeML subset we extract. Kept unexported so the
// schema mapping can evolve without touching the public surface.
type quakeMLDocument struct {
	XMLName         xml.Name `xml:"quakeml"`
	EventParameters struct {
		Events []quakeMLEvent `xml:"event"`
	} `xml:"eventParameters"`
}

type quakeMLEvent struct {
	PublicID                  string                  `xml:"publicID,attr"`
	PreferredOriginID         string                  `xml:"preferredOriginID"`
	PreferredFocalMechanismID string                  `xml:"preferredFocalMechanismID"`
	Origins                   []quakeMLOrigin         `xml:"origin"`
	FocalMechanisms           []quakeMLFocalMechanism `xml:"focalMechanism"`
}

type quakeMLOrigin struct {
	PublicID  string           `xml:"publicID,attr"`
	Latitude  quakeMLQuantity  `xml:"latitude"`
	Longitude quakeMLQuantity  `xml:"longitude"`
	Depth     *quakeMLQuantity `xml:"depth"` // metres per the QuakeML spec; optional
}

type quakeMLFocalMechanism struct {
	PublicID     string `xml:"publicID,attr"`
	MomentTensor struct {
		Tensor struct {
			Mrr quakeMLQuantity `xml:"Mrr"`
			Mtt quakeMLQuantity `xml:"Mtt"`
			Mpp quakeMLQuantity `xml:"Mpp"`
			Mrt quakeMLQuantity `xml:"Mrt"`
			Mrp quakeMLQuantity `xml:"Mrp"`
			Mtp quakeMLQuantity `xml:"Mtp"`
		} `xml:"tensor"`
	} `xml:"momentTensor"`
}

type quakeMLQuantity struct {
	Value float64 `xml:"value"`
}

// SourceFromQuakeML parses a QuakeML document holding exactly one event with
// an origin and a focal-mechanism moment tensor. The preferred origin and
// focal mechanism are used when referenced, otherwise the first of each.
// QuakeML carries depth in metres and tensor components in N·m, so no unit
// conversion applies.
func SourceFromQuakeML(r io.Reader) (*model.Source, error) {
	var doc quakeMLDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("QuakeML: decode: %w", err)
	}

	events := doc.EventParameters.Events
	if len(events) == 0 {
		return nil, fmt.Errorf("QuakeML: document contains zero events")
	}
	if len(events) > 1 {
		return nil, fmt.Errorf("QuakeML: document contains %d events, only one is allowed", len(events))
	}
	ev := events[0]

	if len(ev.Origins) == 0 {
		return nil, fmt.Errorf("QuakeML: event must contain an origin")
	}
	if len(ev.FocalMechanisms) == 0 {
		return nil, fmt.Errorf("QuakeML: event must contain a focal mechanism")
	}

	org := ev.Origins[0]
	for _, o := range ev.Origins {
		if o.PublicID != "" && o.PublicID == ev.PreferredOriginID {
			org = o
			break
		}
	}
	fm := ev.FocalMechanisms[0]
	for _, f := range ev.FocalMechanisms {
		if f.PublicID != "" && f.PublicID == ev.PreferredFocalMechanismID {
			fm = f
			break
		}
	}

	// An origin without a depth element stays at the reference surface.
	var depth *float64
	if org.Depth != nil {
		depth = model.Depth(org.Depth.Value)
	}

	t := fm.MomentTensor.Tensor
	return model.NewSource(
		org.Latitude.Value, org.Longitude.Value, depth,
		t.Mrr.Value, t.Mtt.Value, t.Mpp.Value, t.Mrt.Value, t.Mrp.Value, t.Mtp.Value,
	), nil
}
