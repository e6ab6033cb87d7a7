package mimetree

import (
	"strings"
	"testing"
)

func TestHeaderString(t *testing.T) {
	t.Parallel()

	h := Header{Key: "subject", Value: "Hello, world!"}
	if got := h.String(); got != "subject: Hello, world!" {
		t.Errorf("String: got %q", got)
	}
}

func TestSectionString(t *testing.T) {
	t.Parallel()

	plain := &Section{Kind: KindPlain, Body: []byte("raw body")}
	if got := plain.String(); got != "raw body" {
		t.Errorf("plain: got %q", got)
	}

	empty := &Section{Kind: KindEmpty}
	if got := empty.String(); got != "" {
		t.Errorf("empty: got %q, want empty string", got)
	}

	multi := &Section{
		Kind:     KindMultipart,
		Headers:  []Header{{Key: "content-type", Value: "text/plain"}},
		Children: []*Section{plain},
	}
	got := multi.String()
	if !strings.Contains(got, "content-type: text/plain") {
		t.Errorf("multipart rendering missing headers: %q", got)
	}
	if !strings.Contains(got, "raw body") {
		t.Errorf("multipart rendering missing child body: %q", got)
	}
	if !strings.Contains(got, sectionRule) {
		t.Errorf("multipart rendering missing rule lines: %q", got)
	}
}

func TestMessageString(t *testing.T) {
	t.Parallel()

	msg, err := Parse("Subject: Hi\n\nBody text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := msg.String()
	if !strings.HasPrefix(got, messageRule+"\n") {
		t.Errorf("rendering should start with a rule line: %q", got)
	}
	if !strings.Contains(got, "subject: Hi") {
		t.Errorf("rendering missing headers: %q", got)
	}
	if !strings.Contains(got, "Body text") {
		t.Errorf("rendering missing body: %q", got)
	}
}
