package mimetree

import "strings"

// Diagnostic rendering of parsed trees. The output is lossy (structure and
// byte-exactness are not preserved) and exists for inspection only; it is
// not a wire format and cannot be round-tripped.

const (
	sectionRule = "------------"
	messageRule = "########################"
)

// String renders the section for diagnostics: a Plain section prints its
// body, a Multipart section prints its headers and children between rule
// lines, an Empty section prints nothing.
func (s *Section) String() string {
	var b strings.Builder
	switch s.Kind {
	case KindPlain:
		b.Write(s.Body)
	case KindMultipart:
		b.WriteString(renderHeaders(s.Headers))
		b.WriteString("\n" + sectionRule + "\n")
		for _, child := range s.Children {
			b.WriteString("\n" + child.String() + "\n")
		}
		b.WriteString(sectionRule)
	case KindEmpty:
	}
	return b.String()
}

// String renders the whole message: the top-level header block between rule
// lines, then each section followed by a rule line.
func (m *Message) String() string {
	var b strings.Builder
	b.WriteString(messageRule + "\n")
	b.WriteString(renderHeaders(m.Headers))
	b.WriteString("\n" + messageRule + "\n")
	for _, section := range m.Sections {
		b.WriteString(section.String())
		b.WriteString("\n" + messageRule + "\n")
	}
	return b.String()
}
