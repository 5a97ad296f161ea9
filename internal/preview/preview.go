// Package preview renders a short textual preview of a file's head.
package preview

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pathvana/pathvana/internal/perrors"
)

// Kind tags how a preview's text should be presented.
type Kind int

const (
	// PlainText is unformatted text.
	PlainText Kind = iota
	// Markdown is text wrapped in a fenced code block.
	Markdown
)

const (
	// headLimit bounds how much of a file is read for a preview.
	headLimit = 1024
	// DefaultMaxLines is the default number of preview lines.
	DefaultMaxLines = 20
	// binaryMessage replaces the preview of binary content.
	binaryMessage = "binary file"
)

// Preview is a short rendering of a file's head.
type Preview struct {
	Kind Kind
	Text string
}

// Build reads up to 1KiB from the start of path and renders at most
// maxLines non-empty lines. Content containing a NUL byte is reported as a
// binary file. A non-empty filetype wraps the text in a fenced code block
// tagged with it.
func Build(path string, maxLines int, filetype string) (*Preview, error) {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, perrors.NewPreviewError(path, "failed to open file", err)
	}
	defer func() { _ = f.Close() }()

	head := make([]byte, headLimit)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, perrors.NewPreviewError(path, "failed to read file", err)
	}
	head = head[:n]

	if bytes.IndexByte(head, 0) >= 0 {
		return &Preview{Kind: PlainText, Text: binaryMessage}, nil
	}

	lines := splitLines(string(head))
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	text := strings.Join(lines, "\n")

	if filetype != "" {
		return &Preview{
			Kind: Markdown,
			Text: "```" + filetype + "\n" + text + "\n```",
		}, nil
	}
	return &Preview{Kind: PlainText, Text: text}, nil
}

// splitLines splits on any mix of \r and \n, dropping empty segments.
func splitLines(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '\r' || r == '\n'
	})
}
