package scanner

import (
	"bufio"
	"io"
	"strings"
)

// Line is a single whitespace-stripped input line together with its 1-based
// position in the file.
type Line struct {
	Text   string
	Number int
}

// LineHandler receives scan events in file order. Returning a non-nil error
// from either method aborts the scan immediately.
type LineHandler interface {
	// HandleBlock is called when an open comment buffer is terminated by a
	// non-comment line. block holds the comment content lines in order;
	// trigger is the line that ended the block.
	HandleBlock(block []string, trigger Line) error

	// HandleLine is called for a non-comment line seen while no comment
	// buffer was open.
	HandleLine(trigger Line) error
}

// Scan reads src line by line, buffering the content of consecutive comment
// lines and flushing the buffer against the first non-comment line. The
// buffer is cleared after every flush regardless of what the handler did
// with it. A buffer still open at end of file is dropped, so trailing
// documentation with no code after it never reaches the handler.
func Scan(src io.Reader, h LineHandler) error {
	sc := bufio.NewScanner(src)

	var block []string
	number := 0
	for sc.Scan() {
		number++
		text := strings.TrimSpace(sc.Text())

		if content, ok := CommentContent(text); ok {
			block = append(block, content)
			continue
		}

		line := Line{Text: text, Number: number}
		if block != nil {
			flushed := block
			block = nil
			if err := h.HandleBlock(flushed, line); err != nil {
				return err
			}
			continue
		}
		if err := h.HandleLine(line); err != nil {
			return err
		}
	}
	return sc.Err()
}
