package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wavefieldlabs/seisdb/model"
)

// ReceiversFromStationsFile parses the custom STATIONS format: one receiver
// per line as "STATION NETWORK LATITUDE LONGITUDE ELEVATION BURIAL". The
// trailing two columns are ignored; blank lines are skipped.
func ReceiversFromStationsFile(r io.Reader) ([]model.Receiver, error) {
	var receivers []model.Receiver

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 6 {
			return nil, fmt.Errorf("STATIONS line %d: want 6 fields, got %d", lineNo, len(fields))
		}
		station, network := fields[0], fields[1]

		lat, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("STATIONS line %d: latitude: %w", lineNo, err)
		}
		lon, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("STATIONS line %d: longitude: %w", lineNo, err)
		}

		receivers = append(receivers, model.NewReceiver(lat, lon, network, station, nil))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("STATIONS: %w", err)
	}
	if len(receivers) == 0 {
		return nil, fmt.Errorf("STATIONS: no station lines found")
	}
	return receivers, nil
}
