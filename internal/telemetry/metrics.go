package telemetry

import (
	"sync/atomic"
)

// Metrics collects operation counters for the memory store.
type Metrics struct {
	// Counters
	DocumentsIngested  int64
	IngestFailures     int64
	Retrievals         int64
	ContextsAssembled  int64
	AssembledBytes     int64
	DocumentsRetrieved int64
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncDocumentsIngested increments the ingested documents counter
func (m *Metrics) IncDocumentsIngested() {
	atomic.AddInt64(&m.DocumentsIngested, 1)
}

// IncIngestFailures increments the ingest failures counter
func (m *Metrics) IncIngestFailures() {
	atomic.AddInt64(&m.IngestFailures, 1)
}

// IncRetrievals increments the retrievals counter
func (m *Metrics) IncRetrievals() {
	atomic.AddInt64(&m.Retrievals, 1)
}

// AddDocumentsRetrieved adds to the retrieved documents counter
func (m *Metrics) AddDocumentsRetrieved(n int) {
	atomic.AddInt64(&m.DocumentsRetrieved, int64(n))
}

// IncContextsAssembled records one assembled context of the given size.
// The context contract is unbounded, so the byte total is the only
// visibility a caller gets into context growth.
func (m *Metrics) IncContextsAssembled(bytes int) {
	atomic.AddInt64(&m.ContextsAssembled, 1)
	atomic.AddInt64(&m.AssembledBytes, int64(bytes))
}

// Summary returns a snapshot of collected metrics
func (m *Metrics) Summary() map[string]interface{} {
	return map[string]interface{}{
		"documents_ingested":  atomic.LoadInt64(&m.DocumentsIngested),
		"ingest_failures":     atomic.LoadInt64(&m.IngestFailures),
		"retrievals":          atomic.LoadInt64(&m.Retrievals),
		"documents_retrieved": atomic.LoadInt64(&m.DocumentsRetrieved),
		"contexts_assembled":  atomic.LoadInt64(&m.ContextsAssembled),
		"assembled_bytes":     atomic.LoadInt64(&m.AssembledBytes),
	}
}

// Reset resets all metrics
func (m *Metrics) Reset() {
	atomic.StoreInt64(&m.DocumentsIngested, 0)
	atomic.StoreInt64(&m.IngestFailures, 0)
	atomic.StoreInt64(&m.Retrievals, 0)
	atomic.StoreInt64(&m.DocumentsRetrieved, 0)
	atomic.StoreInt64(&m.ContextsAssembled, 0)
	atomic.StoreInt64(&m.AssembledBytes, 0)
}
