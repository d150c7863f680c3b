package memory

import (
	"strings"
	"time"
)

// TagSentinel is the primary tag recorded when a document carries no tag
// markers. Absence of tags is a valid, first-class state.
const TagSentinel = "@unknown"

// Document is a stored, immutable text record with derived tag metadata.
// Documents are append-only: created once by the Ingestor, read many
// times, never updated or deleted.
type Document struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	PrimaryTag string    `json:"primary_tag"`
	Content    string    `json:"content"`
	Metadata   Metadata  `json:"metadata"`
	Tags       []string  `json:"tags"` // ordered as found in content, duplicates preserved
	CreatedAt  time.Time `json:"created_at"`
}

// Metadata holds facts derived once at ingest time and never recomputed.
type Metadata struct {
	Length   int `json:"length"`    // content length in runes at ingest time
	TagCount int `json:"tag_count"` // number of extracted tag markers
}

// TagString returns the comma-joined storage form of the tags.
func (d *Document) TagString() string {
	return strings.Join(d.Tags, ",")
}

// splitTags is the inverse of TagString. An empty storage string means
// no tags, not one empty tag.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
