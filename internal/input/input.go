// Package input frames raw message text out of input streams: a single
// message per .eml file, or many messages from an mbox stream.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/emersion/go-mbox"
)

// Supported framing formats.
const (
	FormatAuto = "auto"
	FormatEML  = "eml"
	FormatMbox = "mbox"
)

// ReadMessages reads every raw message from r according to format. With
// FormatAuto the stream is sniffed: an mbox stream starts with a "From "
// envelope line, anything else is treated as one message.
func ReadMessages(r io.Reader, format string) ([][]byte, error) {
	br := bufio.NewReader(r)

	switch format {
	case FormatAuto:
		prefix, err := br.Peek(5)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to sniff input: %w", err)
		}
		if bytes.Equal(prefix, []byte("From ")) {
			return readMbox(br)
		}
		return readSingle(br)
	case FormatEML:
		return readSingle(br)
	case FormatMbox:
		return readMbox(br)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

// readSingle reads the whole stream as one message.
func readSingle(r io.Reader) ([][]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read message: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return [][]byte{data}, nil
}

// readMbox splits an mbox stream on its "From " envelope lines and returns
// each contained message.
func readMbox(r io.Reader) ([][]byte, error) {
	mr := mbox.NewReader(r)

	var messages [][]byte
	for {
		msg, err := mr.NextMessage()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read mbox message: %w", err)
		}
		data, err := io.ReadAll(msg)
		if err != nil {
			return nil, fmt.Errorf("failed to read mbox message body: %w", err)
		}
		messages = append(messages, data)
	}
	return messages, nil
}
