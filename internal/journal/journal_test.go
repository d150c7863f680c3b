package journal

import (
	"path/filepath"
	"testing"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournal_RecordAndRecent(t *testing.T) {
	j := newTestJournal(t)

	if err := j.Record(OpIngest, "bloom.ftai"); err != nil {
		t.Fatal(err)
	}
	if err := j.Record(OpRetrieve, "tags=lore limit=5"); err != nil {
		t.Fatal(err)
	}
	if err := j.Record(OpAssemble, "2 entries, 64 bytes"); err != nil {
		t.Fatal(err)
	}

	entries, err := j.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	// Newest first
	if entries[0].Op != OpAssemble {
		t.Errorf("expected assemble first, got %s", entries[0].Op)
	}
	if entries[2].Op != OpIngest {
		t.Errorf("expected ingest last, got %s", entries[2].Op)
	}
	if entries[0].ID == "" || entries[0].ID == entries[1].ID {
		t.Error("entries should carry unique ids")
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("entries should carry a timestamp")
	}
}

func TestJournal_RecentLimit(t *testing.T) {
	j := newTestJournal(t)

	for i := 0; i < 5; i++ {
		if err := j.Record(OpIngest, "doc.txt"); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := j.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestJournal_RecentZeroLimit(t *testing.T) {
	j := newTestJournal(t)
	if err := j.Record(OpIngest, "doc.txt"); err != nil {
		t.Fatal(err)
	}

	entries, err := j.Recent(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty result, got %d", len(entries))
	}
}
