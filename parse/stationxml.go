package parse

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/wavefieldlabs/seisdb/model"
)

type stationXMLDocument struct {
	XMLName  xml.Name            `xml:"FDSNStationXML"`
	Networks []stationXMLNetwork `xml:"Network"`
}

type stationXMLNetwork struct {
	Code     string              `xml:"code,attr"`
	Stations []stationXMLStation `xml:"Station"`
}

type stationXMLStation struct {
	Code      string              `xml:"code,attr"`
	Latitude  float64             `xml:"Latitude"`
	Longitude float64             `xml:"Longitude"`
	Channels  []stationXMLChannel `xml:"Channel"`
}

type stationXMLChannel struct {
	Code      string  `xml:"code,attr"`
	Latitude  float64 `xml:"Latitude"`
	Longitude float64 `xml:"Longitude"`
}

// ReceiversFromStationXML parses an FDSN StationXML document into one
// receiver per station. When a station lists channels, their coordinates
// must all agree (the wavefield database cannot deal with varying receiver
// positions per station); disagreement wraps ErrInconsistentCoordinates.
// Without channels the station's own coordinates are used. Only latitude
// and longitude are read, receiver depth stays nil.
func ReceiversFromStationXML(r io.Reader) ([]model.Receiver, error) {
	var doc stationXMLDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("StationXML: decode: %w", err)
	}
	if len(doc.Networks) == 0 {
		return nil, fmt.Errorf("StationXML: document contains no networks")
	}

	var receivers []model.Receiver
	for _, net := range doc.Networks {
		for _, sta := range net.Stations {
			lat, lon := sta.Latitude, sta.Longitude
			if len(sta.Channels) > 0 {
				lat, lon = sta.Channels[0].Latitude, sta.Channels[0].Longitude
				for _, ch := range sta.Channels[1:] {
					if ch.Latitude != lat || ch.Longitude != lon {
						return nil, fmt.Errorf(
							"%w: channels of station %s.%s disagree",
							ErrInconsistentCoordinates, net.Code, sta.Code)
					}
				}
			}
			receivers = append(receivers, model.NewReceiver(lat, lon, net.Code, sta.Code, nil))
		}
	}
	if len(receivers) == 0 {
		return nil, fmt.Errorf("StationXML: document contains no stations")
	}
	return receivers, nil
}
