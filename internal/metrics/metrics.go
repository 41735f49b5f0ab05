package metrics

import (
	"sync"
	"time"
)

// Store operation names used as metric labels.
const (
	OpList   = "list"
	OpGet    = "get"
	OpCreate = "create"
	OpDelete = "delete"
)

type operationStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about store operations
// and forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu     sync.Mutex
	stats  map[string]*operationStats
	stored int64
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*operationStats),
		otel:  otel,
	}
}

// RecordStoreOperation increments counters for a store operation and keeps its last latency.
func (r *Recorder) RecordStoreOperation(op string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[op]
	if !ok {
		stats = &operationStats{}
		r.stats[op] = stats
	}
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStoreOperation(op, duration, err)
	}
}

// RecordGamesStored adjusts the stored-games gauge by delta.
func (r *Recorder) RecordGamesStored(delta int64) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stored += delta
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordGamesStored(delta)
	}
}

// GamesStored returns the current value of the stored-games gauge.
func (r *Recorder) GamesStored() int64 {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stored
}

// Snapshot returns a copy of the current stats for an operation.
type Snapshot struct {
	Calls       int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(op string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[op]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, route, status, duration)
}
