package testutil

import (
	"fmt"
	"sync"

	"github.com/membank-oss/membank/internal/memory"
)

// MockStore implements memory.Store for testing. Documents live in an
// in-memory slice; ids are assigned sequentially.
type MockStore struct {
	mu         sync.Mutex
	Documents  []memory.Document
	ShouldFail bool
	FailErr    error

	// Call counters for asserting delegation.
	CreateCalls int
	RecentCalls int
	ByTagsCalls int
}

func (m *MockStore) fail() error {
	if m.FailErr != nil {
		return m.FailErr
	}
	return fmt.Errorf("mock store error")
}

// Create appends a document and assigns the next id.
func (m *MockStore) Create(doc *memory.Document) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls++
	if m.ShouldFail {
		return 0, m.fail()
	}

	d := *doc
	d.ID = int64(len(m.Documents) + 1)
	m.Documents = append(m.Documents, d)
	return d.ID, nil
}

// Recent returns the last limit documents in reverse insertion order.
func (m *MockStore) Recent(limit int) ([]memory.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RecentCalls++
	if m.ShouldFail {
		return nil, m.fail()
	}

	return m.newestFirst(func(memory.Document) bool { return true }, limit), nil
}

// ByTags returns documents carrying at least one requested tag,
// reverse insertion order.
func (m *MockStore) ByTags(tags []string, limit int) ([]memory.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ByTagsCalls++
	if m.ShouldFail {
		return nil, m.fail()
	}

	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	return m.newestFirst(func(d memory.Document) bool {
		for _, t := range d.Tags {
			if want[t] {
				return true
			}
		}
		return false
	}, limit), nil
}

// Count returns the number of stored documents.
func (m *MockStore) Count() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ShouldFail {
		return 0, m.fail()
	}
	return int64(len(m.Documents)), nil
}

// Close is a no-op.
func (m *MockStore) Close() error { return nil }

func (m *MockStore) newestFirst(match func(memory.Document) bool, limit int) []memory.Document {
	out := []memory.Document{}
	for i := len(m.Documents) - 1; i >= 0 && len(out) < limit; i-- {
		if match(m.Documents[i]) {
			out = append(out, m.Documents[i])
		}
	}
	return out
}
