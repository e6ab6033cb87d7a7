package mimetree

// Default limits applied when the corresponding Options field is zero.
const (
	// DefaultScanWindow bounds the header/boundary heuristics to the
	// first N bytes of a candidate block. Headers and boundary
	// declarations are assumed to appear early; a document that declares
	// boundary= beyond the window is misclassified. This is a deliberate
	// performance trade-off, not strictness.
	DefaultScanWindow = 3000

	// DefaultMaxDepth caps multipart nesting so that a pathologically
	// nested document fails with ErrTooDeep instead of exhausting the
	// stack.
	DefaultMaxDepth = 64
)

// Options tunes the parser heuristics. The zero value selects the defaults
// above.
type Options struct {
	// ScanWindow is the number of leading bytes inspected by the
	// has-headers and has-boundary checks. Zero selects
	// DefaultScanWindow; negative scans the whole block.
	ScanWindow int

	// MaxDepth is the maximum multipart nesting depth. Zero selects
	// DefaultMaxDepth; negative removes the limit.
	MaxDepth int
}

// withDefaults returns o with zero fields replaced by the default limits.
func (o Options) withDefaults() Options {
	if o.ScanWindow == 0 {
		o.ScanWindow = DefaultScanWindow
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}
