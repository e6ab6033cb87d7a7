package mimetree

import (
	"fmt"
	"log/slog"
	"strings"
)

// SectionKind discriminates the three Section variants.
type SectionKind int

const (
	// KindPlain is raw body content with no recognized structure.
	KindPlain SectionKind = iota
	// KindMultipart is a header block plus zero or more child sections.
	KindMultipart
	// KindEmpty is the vestigial fragment left over after splitting on a
	// closing boundary marker. It carries no headers and no body.
	KindEmpty
)

// String returns the kind name for logs and diagnostics.
func (k SectionKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindMultipart:
		return "multipart"
	case KindEmpty:
		return "empty"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Section is one node of the parsed document tree.
//
// A Plain section holds the literal body bytes, unmodified and undecoded.
// A Multipart section holds its local headers and the child sections its
// body was split into; children are always strict substrings of the parent
// span, so the tree has no cycles. An Empty section has neither. Sections
// are not mutated after parsing.
type Section struct {
	Kind     SectionKind
	Body     []byte     // KindPlain only
	Headers  []Header   // KindMultipart only
	Children []*Section // KindMultipart only
}

// closingTail is the fragment a closing boundary marker ("--<boundary>--\n")
// leaves behind when the body is split on "--<boundary>".
const closingTail = "--\n"

// parseSection recursively parses a raw text span into a Section.
//
// The span is classified in order: the exact closing-boundary leftover maps
// to Empty; a span with no recognizable headers is Plain; a span with
// headers is a Multipart container, split either on its declared boundary
// or, failing that, on the first blank-line run. Structurally odd input
// degrades to Plain or a childless Multipart; the only hard failure is a
// declared boundary whose value cannot be extracted.
func (p *Parser) parseSection(raw string, depth int) (*Section, error) {
	if p.opts.MaxDepth > 0 && depth > p.opts.MaxDepth {
		return nil, fmt.Errorf("depth %d exceeds limit %d: %w", depth, p.opts.MaxDepth, ErrTooDeep)
	}

	if raw == closingTail {
		return &Section{Kind: KindEmpty}, nil
	}

	if !p.hasHeaders(raw) {
		return &Section{Kind: KindPlain, Body: []byte(raw)}, nil
	}

	if p.hasBoundary(raw) {
		return p.parseBoundedSection(raw, depth)
	}
	return p.parseFlatSection(raw, depth)
}

// parseBoundedSection parses a span that declares its own multipart
// boundary: the text before the first delimiter is the local header block,
// the delimited middle fragments are the children, and the closing tail is
// dropped.
func (p *Parser) parseBoundedSection(raw string, depth int) (*Section, error) {
	boundary := boundaryValue(raw)
	if boundary == "" {
		return nil, fmt.Errorf("section at depth %d: %w", depth, ErrMalformedBoundary)
	}

	fragments := strings.Split(raw, "--"+boundary)
	headers := ParseHeaders(fragments[0])

	var children []*Section
	if len(fragments) < 2 {
		// Boundary declared but never used in the body. Keep the
		// headers and fall through with no children.
		slog.Warn("declared boundary not found in section body",
			"boundary", boundary,
			"depth", depth,
		)
	} else {
		for _, fragment := range fragments[1 : len(fragments)-1] {
			child, err := p.parseSection(fragment, depth+1)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
	}

	return &Section{Kind: KindMultipart, Headers: headers, Children: children}, nil
}

// parseFlatSection parses a span with headers but no boundary: a header
// block, a blank-line run, and a body that becomes the single child.
func (p *Parser) parseFlatSection(raw string, depth int) (*Section, error) {
	split := blankRunRE.Split(raw, 2)
	headers := ParseHeaders(split[0])

	if len(split) < 2 {
		// Headers with no blank-line separation and no body. Keep
		// what was folded and return a childless container.
		slog.Debug("header section without body separation", "depth", depth)
		return &Section{Kind: KindMultipart, Headers: headers}, nil
	}

	child, err := p.parseSection(split[1], depth+1)
	if err != nil {
		return nil, err
	}
	return &Section{Kind: KindMultipart, Headers: headers, Children: []*Section{child}}, nil
}
