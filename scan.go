package mimetree

import "regexp"

// Heuristic matchers, compiled once and shared read-only across concurrent
// parses.
var (
	contentTypeRE   = regexp.MustCompile(`(?i)content-type: .+`)
	boundaryDeclRE  = regexp.MustCompile(`(?i)boundary=.+`)
	boundaryValueRE = regexp.MustCompile(`(?i)boundary=["']([[:print:]]+?)["']`)
	multipartRE     = regexp.MustCompile(`(?i)content-type: multipart`)
	blankRunRE      = regexp.MustCompile(`\n{2,}|\r{2,}`)
)

// window truncates raw to the parser's scan window. Heuristics assume
// headers and boundary declarations appear early; anything beyond the
// window is invisible to hasHeaders and hasBoundary.
func (p *Parser) window(raw string) string {
	if p.opts.ScanWindow > 0 && len(raw) > p.opts.ScanWindow {
		return raw[:p.opts.ScanWindow]
	}
	return raw
}

// hasHeaders reports whether the block appears to start with a header
// section, using the presence of a content-type key within the scan window
// as the signal.
func (p *Parser) hasHeaders(raw string) bool {
	return contentTypeRE.MatchString(p.window(raw))
}

// hasBoundary reports whether the block declares a multipart boundary
// within the scan window.
func (p *Parser) hasBoundary(raw string) bool {
	return boundaryDeclRE.MatchString(p.window(raw))
}

// boundaryValue extracts the quoted boundary string from the first
// boundary= declaration in raw. Single and double quotes are accepted
// (including mismatched pairs); the match is non-greedy over printable
// characters. Returns "" when no quoted value is present.
func boundaryValue(raw string) string {
	m := boundaryValueRE.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return m[1]
}

// isMultipart reports whether the document declares a multipart
// content-type anywhere in the full text. Unlike the other heuristics this
// is not window-limited: it classifies the whole message.
func isMultipart(raw string) bool {
	return multipartRE.MatchString(raw)
}
