package memory_test

import (
	"testing"

	"github.com/membank-oss/membank/internal/memory"
	"github.com/membank-oss/membank/internal/testutil"
)

func seededStore() *testutil.MockStore {
	store := &testutil.MockStore{}
	docs := []memory.Document{
		{Title: "a.txt", Content: "alpha", Tags: []string{"lore"}},
		{Title: "b.txt", Content: "beta", Tags: []string{"ops"}},
		{Title: "c.txt", Content: "gamma", Tags: []string{"lore", "ops"}},
		{Title: "d.txt", Content: "delta"},
	}
	for i := range docs {
		store.Create(&docs[i])
	}
	return store
}

func TestRetrieve_NoTagsDelegatesToRecent(t *testing.T) {
	store := seededStore()
	r := memory.NewRetriever(store)

	entries, err := r.Retrieve(nil, 3)
	if err != nil {
		t.Fatal(err)
	}
	if store.RecentCalls != 1 || store.ByTagsCalls != 0 {
		t.Errorf("expected Recent delegation, got recent=%d byTags=%d", store.RecentCalls, store.ByTagsCalls)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	// Newest first
	if entries[0].Title != "d.txt" || entries[0].Content != "delta" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
}

func TestRetrieve_TagsDelegateToByTags(t *testing.T) {
	store := seededStore()
	r := memory.NewRetriever(store)

	entries, err := r.Retrieve([]string{"lore"}, 5)
	if err != nil {
		t.Fatal(err)
	}
	if store.ByTagsCalls != 1 || store.RecentCalls != 0 {
		t.Errorf("expected ByTags delegation, got recent=%d byTags=%d", store.RecentCalls, store.ByTagsCalls)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Title != "c.txt" || entries[1].Title != "a.txt" {
		t.Errorf("unexpected order: %s, %s", entries[0].Title, entries[1].Title)
	}
}

func TestRetrieve_ProjectsToTitleAndContent(t *testing.T) {
	store := seededStore()
	r := memory.NewRetriever(store)

	entries, err := r.Retrieve(nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	if entries[0] != (memory.Entry{Title: "d.txt", Content: "delta"}) {
		t.Errorf("projection should expose only title and content: %+v", entries[0])
	}
}

func TestRetrieve_ZeroLimit(t *testing.T) {
	store := seededStore()
	r := memory.NewRetriever(store)

	entries, err := r.Retrieve([]string{"lore"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty result for limit 0, got %d", len(entries))
	}
}

func TestRetrieve_StoreErrorPropagates(t *testing.T) {
	store := &testutil.MockStore{ShouldFail: true}
	r := memory.NewRetriever(store)

	if _, err := r.Retrieve(nil, 5); err == nil {
		t.Error("expected store error to propagate from Recent path")
	}
	if _, err := r.Retrieve([]string{"lore"}, 5); err == nil {
		t.Error("expected store error to propagate from ByTags path")
	}
}
