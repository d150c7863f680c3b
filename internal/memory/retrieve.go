package memory

// DefaultLimit bounds retrievals when the caller does not specify one.
const DefaultLimit = 5

// Entry is the projection of a Document exposed at the retrieval
// boundary. Everything beyond title and content stays internal.
type Entry struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Retriever reads documents from a store, newest first.
type Retriever struct {
	store Store
}

// NewRetriever creates a retriever over the given store.
func NewRetriever(store Store) *Retriever {
	return &Retriever{store: store}
}

// Retrieve returns up to limit entries, newest first. An empty tag set
// returns the most recent documents; a non-empty set matches documents
// carrying at least one of the requested tags.
func (r *Retriever) Retrieve(tags []string, limit int) ([]Entry, error) {
	var (
		docs []Document
		err  error
	)
	if len(tags) == 0 {
		docs, err = r.store.Recent(limit)
	} else {
		docs, err = r.store.ByTags(tags, limit)
	}
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, Entry{Title: d.Title, Content: d.Content})
	}
	return entries, nil
}
