package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wavefieldlabs/seisdb/model"
)

// Unit conversions fixed by the CMTSOLUTION format: depth is given in km,
// tensor components in dyn·cm.
const (
	cmtDepthKmToM     = 1e3
	cmtDynCmToNewtonM = 1e7
)

// SourceFromCMTSolution parses a CMTSOLUTION file. The format is
// line-oriented: a PDE header, the event name, then "key: value" lines for
// time shift, half duration, latitude, longitude, depth, and the six moment
// tensor components Mrr..Mtp.
func SourceFromCMTSolution(r io.Reader) (*model.Source, error) {
	sc := bufio.NewScanner(r)

	// Header and event name carry nothing we model.
	for _, skip := range []string{"header", "event name"} {
		if _, err := nextLine(sc, skip); err != nil {
			return nil, err
		}
	}

	timeShift, err := lastFieldFloat(sc, "time shift")
	if err != nil {
		return nil, err
	}
	if _, err := nextLine(sc, "half duration"); err != nil {
		return nil, err
	}

	latitude, err := lastFieldFloat(sc, "latitude")
	if err != nil {
		return nil, err
	}
	longitude, err := lastFieldFloat(sc, "longitude")
	if err != nil {
		return nil, err
	}
	depthKm, err := lastFieldFloat(sc, "depth")
	if err != nil {
		return nil, err
	}

	var tensor [6]float64
	for i, name := range []string{"Mrr", "Mtt", "Mpp", "Mrt", "Mrp", "Mtp"} {
		v, err := lastFieldFloat(sc, name)
		if err != nil {
			return nil, err
		}
		tensor[i] = v / cmtDynCmToNewtonM
	}

	src := model.NewSource(latitude, longitude, model.Depth(depthKm*cmtDepthKmToM),
		tensor[0], tensor[1], tensor[2], tensor[3], tensor[4], tensor[5])
	src.TimeShift = &timeShift
	return src, nil
}

func nextLine(sc *bufio.Scanner, what string) (string, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("CMTSOLUTION: reading %s line: %w", what, err)
	}
	return "", fmt.Errorf("CMTSOLUTION: truncated before %s line", what)
}

// lastFieldFloat reads the next line and parses its final whitespace-
// separated field, the value position in "key:   value" CMTSOLUTION lines.
func lastFieldFloat(sc *bufio.Scanner, what string) (float64, error) {
	line, err := nextLine(sc, what)
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, fmt.Errorf("CMTSOLUTION: malformed %s line %q", what, line)
	}
	v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return 0, fmt.Errorf("CMTSOLUTION: %s value in %q: %w", what, line, err)
	}
	return v, nil
}
