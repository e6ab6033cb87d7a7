package mimetree

import (
	"regexp"
	"strings"
)

// Header is one ordered key/value pair from a header block. Keys are
// lowercased on parse; values keep their raw text (including embedded
// newlines from folded lines) trimmed of outer whitespace. Repeated keys
// are kept as separate entries in order of appearance.
type Header struct {
	Key   string
	Value string
}

// String renders the header as "key: value".
func (h Header) String() string {
	return h.Key + ": " + h.Value
}

// headerKeyRE matches a header key at the start of a line: a run of
// letters, digits, underscore or hyphen immediately followed by a colon.
var headerKeyRE = regexp.MustCompile(`(?m)^[0-9A-Za-z_\-]+:`)

// ParseHeaders folds a block of raw header text into an ordered Header
// slice. A value is everything between its key's colon and the start of the
// next recognized key (or end of block), trimmed. Lines that do not start a
// new key — folded continuations in real-world messages — are therefore
// absorbed into the previous value verbatim. A block with no recognized
// keys yields an empty slice, never an error.
func ParseHeaders(block string) []Header {
	locs := headerKeyRE.FindAllStringIndex(block, -1)
	headers := make([]Header, 0, len(locs))
	for i, loc := range locs {
		// loc[1] is one past the colon.
		key := strings.ToLower(strings.TrimSpace(block[loc[0] : loc[1]-1]))
		end := len(block)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		value := strings.TrimSpace(block[loc[1]:end])
		headers = append(headers, Header{Key: key, Value: value})
	}
	return headers
}

// renderHeaders joins headers with newlines for diagnostic output.
func renderHeaders(headers []Header) string {
	parts := make([]string, len(headers))
	for i, h := range headers {
		parts[i] = h.String()
	}
	return strings.Join(parts, "\n")
}
