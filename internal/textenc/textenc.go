// Package textenc transcodes raw message bytes into the valid UTF-8 text
// the parser requires. Charsets are resolved by their IANA names.
package textenc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
)

// Decode converts raw bytes in the named charset to a UTF-8 string. An
// empty charset defaults to utf-8. Unknown charsets fall back to utf-8
// rather than failing, matching the permissive posture of the parser; the
// result is only rejected if it still is not valid UTF-8.
func Decode(raw []byte, charset string) (string, error) {
	if charset == "" {
		charset = "utf-8"
	}

	if isUTF8Name(charset) {
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("input is not valid UTF-8")
		}
		return string(raw), nil
	}

	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		// Unknown charset: try the bytes as UTF-8 before giving up.
		if utf8.Valid(raw) {
			return string(raw), nil
		}
		return "", fmt.Errorf("unknown charset %q and input is not valid UTF-8", charset)
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s input: %w", charset, err)
	}
	return string(decoded), nil
}

// isUTF8Name reports whether the charset name is one of the common
// spellings of UTF-8.
func isUTF8Name(charset string) bool {
	switch strings.ToLower(charset) {
	case "utf-8", "utf8", "us-ascii", "ascii":
		return true
	}
	return false
}
