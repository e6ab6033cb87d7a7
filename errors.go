package mimetree

import "errors"

// Sentinel errors returned by Parse. Callers should test with errors.Is;
// returned errors may carry additional context via wrapping.
var (
	// ErrInvalidMessage means the document lacks the minimal structural
	// shape of a MIME message: empty input, no header/body separation on
	// the plain path, or a multipart content-type with no boundary
	// declaration anywhere in the document.
	ErrInvalidMessage = errors.New("mimetree: invalid message structure")

	// ErrMalformedBoundary means a boundary= declaration was detected but
	// no quoted value could be extracted from it.
	ErrMalformedBoundary = errors.New("mimetree: boundary declared but value not extractable")

	// ErrInvalidEncoding means the input is not valid UTF-8. The parser
	// operates on text; transcode raw bytes before calling.
	ErrInvalidEncoding = errors.New("mimetree: input is not valid UTF-8")

	// ErrTooDeep means multipart nesting exceeded Options.MaxDepth.
	ErrTooDeep = errors.New("mimetree: multipart nesting too deep")

	// ErrUnknown is a reserved catch-all. No normal parse path returns it.
	ErrUnknown = errors.New("mimetree: unknown parse failure")
)
