package memory

import (
	"os"
	"path/filepath"
	"regexp"
	"unicode/utf8"

	"github.com/membank-oss/membank/internal/errors"
	"github.com/membank-oss/membank/internal/telemetry"
)

// tagPattern matches inline tag markers of the form "@word".
var tagPattern = regexp.MustCompile(`@(\w+)`)

// ExtractTags returns the ordered tag tokens found in content, without
// the "@" prefix. Repeated markers yield repeated entries — ordering
// and duplicates are part of the contract, not an accident.
func ExtractTags(content string) []string {
	matches := tagPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}

// Receipt confirms a completed ingest.
type Receipt struct {
	ID    int64    `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

// Ingestor parses raw text sources into Documents and persists them.
type Ingestor struct {
	store  Store
	logger *telemetry.Logger
}

// NewIngestor creates an ingestor writing through the given store.
func NewIngestor(store Store, logger *telemetry.Logger) *Ingestor {
	return &Ingestor{store: store, logger: logger}
}

// Ingest reads the source at path and creates exactly one new document
// record. No existing record is read or compared: re-ingesting the same
// source appends a second, independent record.
//
// A missing or unreadable source returns a SOURCE_NOT_FOUND error and
// leaves the store untouched, so ingestion of other sources can
// continue.
func (in *Ingestor) Ingest(path string) (*Receipt, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(path)
		}
		return nil, errors.Wrap(errors.CodeSourceNotFound, "source not found: "+path, err)
	}

	content := string(raw)
	tags := ExtractTags(content)

	primary := TagSentinel
	if len(tags) > 0 {
		primary = "@" + tags[0]
	}

	doc := &Document{
		Title:      filepath.Base(path),
		PrimaryTag: primary,
		Content:    content,
		Metadata: Metadata{
			Length:   utf8.RuneCountInString(content),
			TagCount: len(tags),
		},
		Tags: tags,
	}

	id, err := in.store.Create(doc)
	if err != nil {
		return nil, err
	}

	if in.logger != nil {
		in.logger.Info("document ingested",
			"id", id,
			"title", doc.Title,
			"primary_tag", doc.PrimaryTag,
			"tags", len(tags),
		)
	}

	return &Receipt{ID: id, Title: doc.Title, Tags: tags}, nil
}
