// Package console reads interactive line input.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ErrInterrupted is returned when the context ends while waiting for input.
var ErrInterrupted = errors.New("interrupted")

// Prompter asks the user for one line of input.
type Prompter interface {
	Prompt(ctx context.Context, out io.Writer, label string) (string, error)
}

// Reader delivers lines of any length from an io.Reader and can be abandoned
// on cancellation.
// The scanning goroutine lives until the underlying reader is exhausted.
type Reader struct {
	lines chan string
	err   error // set before lines is closed
}

var _ Prompter = (*Reader)(nil)

// NewReader starts reading lines from r.
func NewReader(r io.Reader) *Reader {
	cr := &Reader{lines: make(chan string)}
	go cr.scan(r)
	return cr
}

func (r *Reader) scan(src io.Reader) {
	defer close(r.lines)
	br := bufio.NewReader(src)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			r.lines <- strings.TrimSuffix(line, "\r")
		}
		if err != nil {
			if err != io.EOF {
				r.err = errors.Wrap(err, "read input")
			}
			return
		}
	}
}

// ReadLine returns the next line without its terminator.
// It returns io.EOF at end of input and ErrInterrupted when ctx is done.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInterrupted
	}
	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case line, ok := <-r.lines:
		if !ok {
			if r.err != nil {
				return "", r.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// Prompt writes label to out and reads a line.
func (r *Reader) Prompt(ctx context.Context, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	return r.ReadLine(ctx)
}
