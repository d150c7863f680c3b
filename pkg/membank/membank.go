// Package membank provides the public API for the membank memory store.
//
// Example usage:
//
//	import "github.com/membank-oss/membank/pkg/membank"
//
//	// Ingest a tagged source file
//	receipt, err := membank.Ingest("lore/bloom.ftai")
//
//	// Assemble a context block for prompt injection
//	block, err := membank.Assemble([]string{"lore"}, membank.DefaultLimit)
//
// Every operation opens the configured store, does its work, and closes
// the store before returning, on every exit path. There is no shared
// connection and no background task; concurrent writers must be
// serialized by the caller.
package membank

import (
	"fmt"

	"github.com/membank-oss/membank/internal/config"
	"github.com/membank-oss/membank/internal/event"
	"github.com/membank-oss/membank/internal/journal"
	"github.com/membank-oss/membank/internal/memory"
	"github.com/membank-oss/membank/internal/telemetry"
)

// DefaultLimit bounds retrievals when the caller does not specify one.
const DefaultLimit = memory.DefaultLimit

// metrics accumulates operation counters for the lifetime of the
// process embedding this package.
var metrics = telemetry.NewMetrics()

// Metrics returns a snapshot of the operation counters recorded since
// process start (or the last ResetMetrics).
func Metrics() map[string]interface{} {
	return metrics.Summary()
}

// ResetMetrics zeroes the operation counters.
func ResetMetrics() {
	metrics.Reset()
}

// Receipt confirms a completed ingest.
type Receipt = memory.Receipt

// Entry is a retrieved (title, content) pair.
type Entry = memory.Entry

// Ingest parses the source at path into a document and persists it,
// using the configuration found in the current directory.
func Ingest(path string) (*Receipt, error) {
	return IngestIn(".", path)
}

// IngestIn is Ingest with an explicit configuration directory.
//
// The document is persisted and journaled before hooks fire. If a
// blocking hook then fails, IngestIn returns the receipt together with
// the hook error so the committed write is not mistaken for a failed
// one.
func IngestIn(dir, path string) (*Receipt, error) {
	cfg, logger, bus, err := setup(dir)
	if err != nil {
		return nil, err
	}

	store, err := memory.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	receipt, err := memory.NewIngestor(store, logger).Ingest(path)
	if err != nil {
		metrics.IncIngestFailures()
		_ = bus.Emit(event.NewEvent(event.DocumentIngestFailed, map[string]interface{}{
			"source": path,
			"error":  err.Error(),
		}))
		return nil, err
	}

	metrics.IncDocumentsIngested()
	record(cfg, logger, journal.OpIngest, receipt.Title)
	if err := bus.Emit(event.NewEvent(event.DocumentIngested, map[string]interface{}{
		"id":    receipt.ID,
		"title": receipt.Title,
		"tags":  len(receipt.Tags),
	})); err != nil {
		return receipt, err
	}

	return receipt, nil
}

// Retrieve returns up to limit (title, content) entries, newest first,
// optionally filtered to documents carrying at least one of the tags.
func Retrieve(tags []string, limit int) ([]Entry, error) {
	return RetrieveIn(".", tags, limit)
}

// RetrieveIn is Retrieve with an explicit configuration directory.
func RetrieveIn(dir string, tags []string, limit int) ([]Entry, error) {
	cfg, logger, bus, err := setup(dir)
	if err != nil {
		return nil, err
	}

	store, err := memory.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	entries, err := memory.NewRetriever(store).Retrieve(tags, limit)
	if err != nil {
		return nil, err
	}

	metrics.IncRetrievals()
	metrics.AddDocumentsRetrieved(len(entries))
	record(cfg, logger, journal.OpRetrieve, fmt.Sprintf("tags=%v limit=%d matched=%d", tags, limit, len(entries)))
	if err := bus.Emit(event.NewEvent(event.ContextRetrieved, map[string]interface{}{
		"tags":    tags,
		"limit":   limit,
		"matched": len(entries),
	})); err != nil {
		return nil, err
	}

	return entries, nil
}

// Assemble retrieves matching documents and formats them into a single
// delimited context block. The block is unbounded: every matched
// document is included verbatim.
func Assemble(tags []string, limit int) (string, error) {
	return AssembleIn(".", tags, limit)
}

// AssembleIn is Assemble with an explicit configuration directory.
func AssembleIn(dir string, tags []string, limit int) (string, error) {
	cfg, logger, bus, err := setup(dir)
	if err != nil {
		return "", err
	}

	store, err := memory.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		return "", fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	entries, err := memory.NewRetriever(store).Retrieve(tags, limit)
	if err != nil {
		return "", err
	}
	block := memory.AssembleContext(entries)

	metrics.IncContextsAssembled(len(block))
	record(cfg, logger, journal.OpAssemble, fmt.Sprintf("%d entries, %d bytes", len(entries), len(block)))
	if err := bus.Emit(event.NewEvent(event.ContextAssembled, map[string]interface{}{
		"entries": len(entries),
		"bytes":   len(block),
	})); err != nil {
		return "", err
	}

	return block, nil
}

func setup(dir string) (*config.Config, *telemetry.Logger, *event.Bus, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := telemetry.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	bus, err := event.BusFromConfig(&cfg.Hooks, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build hooks: %w", err)
	}

	return cfg, logger, bus, nil
}

// record journals an operation. Journal trouble is logged, never fatal:
// the journaled operation has already succeeded.
func record(cfg *config.Config, logger *telemetry.Logger, op, detail string) {
	if !cfg.Journal.Enabled {
		return
	}

	j, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		logger.Warn("journal unavailable", "error", err)
		return
	}
	defer j.Close()

	if err := j.Record(op, detail); err != nil {
		logger.Warn("journal write failed", "op", op, "error", err)
	}
}
