// Package mimetree is a permissive, recursive parser for MIME-formatted
// documents (email messages and similar multipart containers).
//
// It assumes input is mostly compliant and extracts as much structure as it
// can: folded headers, inconsistent casing, missing or malformed boundaries
// and deeply nested multipart bodies all degrade to best-effort output rather
// than failing. The result is a minimal tree of raw headers and raw body
// bytes with no filtering or decoding; content-transfer-encoding, charset
// conversion and header-value decoding are left to the caller.
//
//	msg, err := mimetree.Parse(raw)
//	if err != nil {
//		// handle error
//	}
//	for _, sec := range msg.Sections { ... }
//
// Input must already be valid UTF-8 text; use a transcoding layer (for
// example internal/textenc in this module's CLI) to convert raw bytes first.
package mimetree
