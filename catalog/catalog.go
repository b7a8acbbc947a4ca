// Package catalog is an in-memory, thread-safe store for parsed sources and
// receivers, the working set a wavefield-query frontend serves from.
package catalog

import (
	"fmt"
	"sync"

	"github.com/wavefieldlabs/seisdb/model"
)

// MetricsRecorder receives catalog size updates on every mutation. The
// observability collector implements this; tests substitute their own.
type MetricsRecorder interface {
	SetCatalogCounts(sources, receivers int)
}

// SourceEntry pairs a stored source with its caller-assigned ID.
type SourceEntry struct {
	ID     string
	Source *model.Source
}

// Catalog stores sources keyed by caller-assigned ID and receivers keyed by
// their NET.STA code. Listings come back in insertion order.
type Catalog struct {
	mu sync.RWMutex

	sources     map[string]*model.Source
	sourceOrder []string

	receivers     map[string]model.Receiver
	receiverOrder []string

	sourceSeq int

	metrics MetricsRecorder
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithMetricsRecorder attaches a recorder that is driven on every mutation.
func WithMetricsRecorder(m MetricsRecorder) Option {
	return func(c *Catalog) { c.metrics = m }
}

// New constructs an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		sources:   make(map[string]*model.Source),
		receivers: make(map[string]model.Receiver),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddSource stores a source under id. It returns an error if the ID is
// empty, the source is nil, or the ID already exists.
func (c *Catalog) AddSource(id string, src *model.Source) error {
	if id == "" {
		return fmt.Errorf("source ID must not be empty")
	}
	if src == nil {
		return fmt.Errorf("source %q is nil", id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.sources[id]; exists {
		return fmt.Errorf("source with ID %q already exists", id)
	}
	c.sources[id] = src
	c.sourceOrder = append(c.sourceOrder, id)
	c.recordCountsLocked()
	return nil
}

// AddSourceAutoID stores a source under a generated "source-N" ID and
// returns it. The ID is drawn from a sequence under the catalog lock, so
// concurrent callers never collide; sequence values already taken by a
// caller-assigned ID are skipped.
func (c *Catalog) AddSourceAutoID(src *model.Source) (string, error) {
	if src == nil {
		return "", fmt.Errorf("source is nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var id string
	for {
		c.sourceSeq++
		id = fmt.Sprintf("source-%d", c.sourceSeq)
		if _, exists := c.sources[id]; !exists {
			break
		}
	}
	c.sources[id] = src
	c.sourceOrder = append(c.sourceOrder, id)
	c.recordCountsLocked()
	return id, nil
}

// AddReceiver stores a receiver keyed by its NET.STA code. Duplicates
// (same code) are rejected; the error distinguishes an exact duplicate from
// a conflicting redefinition of the same code.
func (c *Catalog) AddReceiver(r model.Receiver) error {
	code := r.Code()

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, exists := c.receivers[code]; exists {
		if existing.Equal(r) {
			return fmt.Errorf("receiver %s already exists", code)
		}
		return fmt.Errorf("receiver %s already exists with different attributes", code)
	}
	c.receivers[code] = r
	c.receiverOrder = append(c.receiverOrder, code)
	c.recordCountsLocked()
	return nil
}

// Source returns the source stored under id.
func (c *Catalog) Source(id string) (*model.Source, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	src, ok := c.sources[id]
	return src, ok
}

// Receiver returns the receiver stored under the NET.STA code.
func (c *Catalog) Receiver(code string) (model.Receiver, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.receivers[code]
	return r, ok
}

// ListSources returns a snapshot of all sources in insertion order.
func (c *Catalog) ListSources() []SourceEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]SourceEntry, 0, len(c.sourceOrder))
	for _, id := range c.sourceOrder {
		out = append(out, SourceEntry{ID: id, Source: c.sources[id]})
	}
	return out
}

// ListReceivers returns a snapshot of all receivers in insertion order.
func (c *Catalog) ListReceivers() []model.Receiver {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Receiver, 0, len(c.receiverOrder))
	for _, code := range c.receiverOrder {
		out = append(out, c.receivers[code])
	}
	return out
}

// Counts returns the number of stored sources and receivers.
func (c *Catalog) Counts() (sources, receivers int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sources), len(c.receivers)
}

func (c *Catalog) recordCountsLocked() {
	if c.metrics != nil {
		c.metrics.SetCatalogCounts(len(c.sources), len(c.receivers))
	}
}
