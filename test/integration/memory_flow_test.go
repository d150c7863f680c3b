//go:build integration

package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/membank-oss/membank/internal/journal"
	"github.com/membank-oss/membank/pkg/membank"
)

// newProject writes a membank.yaml pointing the store and journal at
// the temp dir, and returns the project dir.
func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := fmt.Sprintf(`
store:
  driver: sqlite
  path: %s
journal:
  enabled: true
  path: %s
logging:
  level: error
`, filepath.Join(dir, "membank.db"), filepath.Join(dir, "journal.db"))

	if err := os.WriteFile(filepath.Join(dir, "membank.yaml"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIngestRetrieveAssembleFlow(t *testing.T) {
	dir := newProject(t)

	bloom := writeSource(t, dir, "bloom.ftai", "@lore Serena discovers the bloom")
	ops := writeSource(t, dir, "deploy.txt", "@ops first deployment in Nevada")
	plain := writeSource(t, dir, "plain.txt", "untagged background notes")

	for _, src := range []string{bloom, ops, plain} {
		receipt, err := membank.IngestIn(dir, src)
		if err != nil {
			t.Fatalf("ingest %s: %v", src, err)
		}
		if receipt.Title == "" {
			t.Fatal("receipt should carry the title")
		}
	}

	// Unfiltered retrieval: newest first, all three.
	entries, err := membank.RetrieveIn(dir, nil, membank.DefaultLimit)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Title != "plain.txt" {
		t.Errorf("expected newest first, got %q", entries[0].Title)
	}

	// Tag-filtered retrieval.
	entries, err = membank.RetrieveIn(dir, []string{"lore"}, membank.DefaultLimit)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Title != "bloom.ftai" {
		t.Fatalf("expected only bloom.ftai for tag lore, got %+v", entries)
	}

	// Assembled context block.
	block, err := membank.AssembleIn(dir, []string{"lore", "ops"}, membank.DefaultLimit)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(block, "# bloom.ftai\n@lore Serena discovers the bloom\n") {
		t.Errorf("block missing bloom document:\n%s", block)
	}
	if !strings.Contains(block, "\n---\n") {
		t.Error("block should contain the separator between two documents")
	}
	if strings.Contains(block, "untagged background notes") {
		t.Error("untagged document must not match a tag filter")
	}
}

func TestFlowJournalsOperations(t *testing.T) {
	dir := newProject(t)

	src := writeSource(t, dir, "note.txt", "@lore a note")
	if _, err := membank.IngestIn(dir, src); err != nil {
		t.Fatal(err)
	}
	if _, err := membank.AssembleIn(dir, nil, membank.DefaultLimit); err != nil {
		t.Fatal(err)
	}

	j, err := journal.Open(filepath.Join(dir, "journal.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	ops, err := j.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 2 {
		t.Fatalf("expected 2 journaled operations, got %d", len(ops))
	}
	if ops[0].Op != journal.OpAssemble || ops[1].Op != journal.OpIngest {
		t.Errorf("unexpected journal ops: %s, %s", ops[0].Op, ops[1].Op)
	}
}

func TestMissingSourceDoesNotAbortOthers(t *testing.T) {
	dir := newProject(t)

	if _, err := membank.IngestIn(dir, filepath.Join(dir, "missing.txt")); err == nil {
		t.Fatal("expected error for missing source")
	}

	// The failure must not poison later ingests.
	src := writeSource(t, dir, "ok.txt", "@lore fine")
	if _, err := membank.IngestIn(dir, src); err != nil {
		t.Fatalf("ingest after failure should succeed: %v", err)
	}

	entries, err := membank.RetrieveIn(dir, nil, membank.DefaultLimit)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly the one good document, got %d", len(entries))
	}
}

func TestZeroLimitEmptyBlock(t *testing.T) {
	dir := newProject(t)

	src := writeSource(t, dir, "note.txt", "@lore a note")
	if _, err := membank.IngestIn(dir, src); err != nil {
		t.Fatal(err)
	}

	block, err := membank.AssembleIn(dir, []string{"lore"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if block != "" {
		t.Errorf("expected empty block for limit 0, got %q", block)
	}
}
