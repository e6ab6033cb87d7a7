package mimetree

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Message is the root of a parsed document: the top-level header block plus
// the ordered top-level sections. A Message is built fresh by one Parse
// call and never mutated afterwards.
type Message struct {
	Headers  []Header
	Sections []*Section
}

// Parser parses MIME documents with a fixed set of Options. The zero-cost
// construction makes it equally fine to create one per call or share one
// across goroutines; Parser holds no mutable state.
type Parser struct {
	opts Options
}

// NewParser returns a Parser using opts with defaults applied.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts.withDefaults()}
}

// Parse parses a document with default Options. See Parser.Parse.
func Parse(raw string) (*Message, error) {
	return NewParser(Options{}).Parse(raw)
}

// Parse parses one MIME document into a Message.
//
// The document is classified as multipart iff a multipart content-type
// appears anywhere in the text; plain and multipart documents then take
// entirely separate paths. Parsing is a pure function of the input: no
// shared state is touched and an error never corrupts later calls.
func (p *Parser) Parse(raw string) (*Message, error) {
	if !utf8.ValidString(raw) {
		return nil, fmt.Errorf("parse message: %w", ErrInvalidEncoding)
	}
	if isMultipart(raw) {
		return p.parseMultipartMessage(raw)
	}
	return p.parsePlainMessage(raw)
}

// parsePlainMessage handles documents without a multipart content-type:
// a header block, a blank-line run, and a body forming a single section.
func (p *Parser) parsePlainMessage(raw string) (*Message, error) {
	split := blankRunRE.Split(raw, 2)
	if len(split) != 2 || split[0] == "" || split[1] == "" {
		return nil, fmt.Errorf("no header/body separation: %w", ErrInvalidMessage)
	}

	headers := ParseHeaders(split[0])

	section, err := p.parseSection(split[1], 0)
	if err != nil {
		return nil, err
	}

	return &Message{Headers: headers, Sections: []*Section{section}}, nil
}

// parseMultipartMessage splits the whole document on its declared boundary.
// Unlike nested sections, the trailing terminator fragment is kept: callers
// should expect the final section to frequently be Empty.
func (p *Parser) parseMultipartMessage(raw string) (*Message, error) {
	boundary := boundaryValue(raw)
	if boundary == "" {
		return nil, fmt.Errorf("multipart without boundary declaration: %w", ErrInvalidMessage)
	}

	fragments := strings.Split(raw, "--"+boundary)
	headers := ParseHeaders(fragments[0])

	sections := make([]*Section, 0, len(fragments)-1)
	for _, fragment := range fragments[1:] {
		section, err := p.parseSection(fragment, 0)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	return &Message{Headers: headers, Sections: sections}, nil
}
