package memory

// Store persists documents. Pure CRUD with no business logic; the only
// mutation is Create — the core contract has no update or delete.
type Store interface {
	// Create appends one document record and returns its assigned id.
	// Duplicate content is never an error.
	Create(doc *Document) (int64, error)

	// Recent returns up to limit documents, newest first.
	// A limit of zero returns an empty slice.
	Recent(limit int) ([]Document, error)

	// ByTags returns up to limit documents carrying at least one of the
	// requested tags, newest first. Matching is exact token membership
	// against the stored tag list.
	ByTags(tags []string, limit int) ([]Document, error)

	// Count returns the total number of stored documents.
	Count() (int64, error)

	// Close releases any resources held by the store.
	Close() error
}
