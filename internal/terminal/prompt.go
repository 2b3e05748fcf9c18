package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// LineReader reads one line of input at a time. The shell and the
// confirmation prompt share one reader so neither buffers input meant for
// the other. A single goroutine scans the input so a pending read can be
// abandoned when the context is cancelled.
type LineReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	once    sync.Once
	lines   chan string
}

// NewLineReader reads from in and writes prompts to out.
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(in), out: out, lines: make(chan string)}
}

func (r *LineReader) scan() {
	for r.scanner.Scan() {
		r.lines <- r.scanner.Text()
	}
	close(r.lines)
}

// ReadLine prints prompt and returns the next line. ok is false at end of
// input or when ctx is done.
func (r *LineReader) ReadLine(ctx context.Context, prompt string) (line string, ok bool) {
	r.once.Do(func() { go r.scan() })
	fmt.Fprint(r.out, prompt)

	select {
	case <-ctx.Done():
		fmt.Fprintln(r.out)
		return "", false
	case line, ok = <-r.lines:
		return strings.TrimSpace(line), ok
	}
}

// Confirmer asks s/n questions on the terminal.
type Confirmer struct {
	lines *LineReader
}

// NewConfirmer creates a confirmer that shares lines with the shell.
func NewConfirmer(lines *LineReader) *Confirmer {
	return &Confirmer{lines: lines}
}

// Confirm accepts s, sim, y and yes. Anything else, including end of input,
// is a no.
func (c *Confirmer) Confirm(ctx context.Context, prompt string) bool {
	answer, ok := c.lines.ReadLine(ctx, prompt+" (s/n) ")
	if !ok {
		return false
	}
	switch strings.ToLower(answer) {
	case "s", "sim", "y", "yes":
		return true
	}
	return false
}
