package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/wavefieldlabs/seisdb/internal/logging"
	"github.com/wavefieldlabs/seisdb/model"
	"github.com/wavefieldlabs/seisdb/parse"
)

// Upload size cap for the parse endpoints. Station inventories are the
// largest realistic payload and stay well under this.
const maxParseBody = 8 << 20

type sourceJSON struct {
	ID        string   `json:"id"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	DepthInM  *float64 `json:"depth_in_m,omitempty"`
	Mrr       float64  `json:"m_rr"`
	Mtt       float64  `json:"m_tt"`
	Mpp       float64  `json:"m_pp"`
	Mrt       float64  `json:"m_rt"`
	Mrp       float64  `json:"m_rp"`
	Mtp       float64  `json:"m_tp"`
	TimeShift *float64 `json:"time_shift,omitempty"`
}

type receiverJSON struct {
	Code      string   `json:"code"`
	Network   string   `json:"network"`
	Station   string   `json:"station"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	DepthInM  *float64 `json:"depth_in_m,omitempty"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Z         float64  `json:"z"`
}

func toSourceJSON(id string, s *model.Source) sourceJSON {
	return sourceJSON{
		ID:        id,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		DepthInM:  s.DepthInM,
		Mrr:       s.Mrr,
		Mtt:       s.Mtt,
		Mpp:       s.Mpp,
		Mrt:       s.Mrt,
		Mrp:       s.Mrp,
		Mtp:       s.Mtp,
		TimeShift: s.TimeShift,
	}
}

func (s *Server) toReceiverJSON(r model.Receiver) receiverJSON {
	return receiverJSON{
		Code:      r.Code(),
		Network:   r.Network,
		Station:   r.Station,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		DepthInM:  r.DepthInM,
		X:         r.X(s.planetRadius),
		Y:         r.Y(s.planetRadius),
		Z:         r.Z(s.planetRadius),
	}
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entries := s.catalog.ListSources()
	out := make([]sourceJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, toSourceJSON(e.ID, e.Source))
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) handleReceivers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	receivers := s.catalog.ListReceivers()
	out := make([]receiverJSON, 0, len(receivers))
	for _, recv := range receivers {
		out = append(out, s.toReceiverJSON(recv))
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) handleReceiver(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := strings.TrimPrefix(r.URL.Path, "/api/receivers/")
	if code == "" {
		http.Error(w, "receiver code required", http.StatusBadRequest)
		return
	}

	recv, ok := s.catalog.Receiver(code)
	if !ok {
		http.Error(w, fmt.Sprintf("receiver %q not found", code), http.StatusNotFound)
		return
	}
	s.writeJSON(w, r, http.StatusOK, s.toReceiverJSON(recv))
}

func (s *Server) handleParseSource(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxParseBody))
	if err != nil {
		http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
		return
	}

	src, err := parse.SourceFromBytes(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		generated, err := s.catalog.AddSourceAutoID(src)
		if err != nil {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		id = generated
	} else if err := s.catalog.AddSource(id, src); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	ctx := r.Context()
	s.log.Info(ctx, "source added",
		logging.String("id", id),
		logging.Float64("latitude", src.Latitude),
		logging.Float64("longitude", src.Longitude),
	)
	s.writeJSON(w, r, http.StatusCreated, toSourceJSON(id, src))
}

func (s *Server) handleParseReceivers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxParseBody))
	if err != nil {
		http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
		return
	}

	receivers, err := parse.ReceiversFromBytes(data)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, parse.ErrInconsistentCoordinates) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	ctx := r.Context()
	added := make([]receiverJSON, 0, len(receivers))
	for _, recv := range receivers {
		if err := s.catalog.AddReceiver(recv); err != nil {
			// Re-uploading an inventory is common; skip known receivers.
			s.log.Debug(ctx, "skipping receiver", logging.String("code", recv.Code()), logging.Err(err))
			continue
		}
		added = append(added, s.toReceiverJSON(recv))
	}

	s.log.Info(ctx, "receivers added",
		logging.Int("parsed", len(receivers)),
		logging.Int("added", len(added)),
	)
	s.writeJSON(w, r, http.StatusCreated, added)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error(r.Context(), "encoding response failed", logging.Err(err))
	}
}
