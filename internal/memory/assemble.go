package memory

import "strings"

const (
	headerMarker   = "# "
	blockSeparator = "\n---\n"
)

// AssembleContext formats retrieved entries into a single delimited text
// block for downstream injection. Each entry renders as a header line,
// its full content, and a trailing blank line; blocks are joined by a
// dash separator line.
//
// Content is included verbatim with no truncation or size cap — size
// governance belongs to the caller. An empty input yields an empty
// string.
func AssembleContext(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		var b strings.Builder
		b.WriteString(headerMarker)
		b.WriteString(e.Title)
		b.WriteString("\n")
		b.WriteString(e.Content)
		b.WriteString("\n")
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, blockSeparator)
}
