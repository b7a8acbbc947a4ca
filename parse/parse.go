// Package parse converts heterogeneous seismological file formats into the
// in-memory source and receiver models. Every converter is best-effort over
// one format; ParseSource and ParseReceivers sniff across formats.
package parse

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/wavefieldlabs/seisdb/model"
)

var (
	// ErrUnparseable reports that no supported format matched the input.
	ErrUnparseable = errors.New("input could not be parsed as any supported format")

	// ErrInconsistentCoordinates reports that grouped records (channels of
	// one station) disagree on their coordinates.
	ErrInconsistentCoordinates = errors.New("grouped records have inconsistent coordinates")
)

// ParseSource reads the file at path and attempts to parse it as QuakeML,
// then as a CMTSOLUTION file. It wraps ErrUnparseable when neither matches.
func ParseSource(path string) (*model.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}
	src, err := SourceFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	return src, nil
}

// SourceFromBytes is ParseSource over in-memory data.
func SourceFromBytes(data []byte) (*model.Source, error) {
	if src, err := SourceFromQuakeML(bytes.NewReader(data)); err == nil {
		return src, nil
	}
	if src, err := SourceFromCMTSolution(bytes.NewReader(data)); err == nil {
		return src, nil
	}
	return nil, ErrUnparseable
}

// ParseReceivers reads the file at path and attempts to parse it as a
// STATIONS file, then as FDSN StationXML. The result is deduplicated,
// keeping the first occurrence of each receiver. An inconsistent-coordinate
// condition inside a matched format is reported, not retried as another
// format.
func ParseReceivers(path string) ([]model.Receiver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read receiver file: %w", err)
	}
	recv, err := ReceiversFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	return recv, nil
}

// ReceiversFromBytes is ParseReceivers over in-memory data.
func ReceiversFromBytes(data []byte) ([]model.Receiver, error) {
	if recv, err := ReceiversFromStationsFile(bytes.NewReader(data)); err == nil {
		return dedupReceivers(recv), nil
	}
	recv, err := ReceiversFromStationXML(bytes.NewReader(data))
	if err == nil {
		return dedupReceivers(recv), nil
	}
	if errors.Is(err, ErrInconsistentCoordinates) {
		return nil, err
	}
	return nil, ErrUnparseable
}

// dedupReceivers removes duplicates, preserving order and dropping
// occurrences later in the list.
func dedupReceivers(receivers []model.Receiver) []model.Receiver {
	out := make([]model.Receiver, 0, len(receivers))
	for _, r := range receivers {
		dup := false
		for _, kept := range out {
			if kept.Equal(r) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, r)
		}
	}
	return out
}
