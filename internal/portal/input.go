package portal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

type readResult struct {
	line string
	err  error
}

// lineReader reads one line per request on its own goroutine so a pending
// read can be abandoned when the context is cancelled.
type lineReader struct {
	requests chan struct{}
	results  chan readResult
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		requests: make(chan struct{}),
		results:  make(chan readResult, 1),
	}
	br := bufio.NewReader(r)
	go func() {
		for range lr.requests {
			line, err := br.ReadString('\n')
			lr.results <- readResult{line: line, err: err}
		}
	}()
	return lr
}

// ReadLine returns the next line without its line ending. A final line that
// lacks a newline is still returned; io.EOF is reported only when nothing
// was read.
func (lr *lineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	select {
	case lr.requests <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}

	select {
	case res := <-lr.results:
		if res.err != nil {
			if errors.Is(res.err, io.EOF) && len(res.line) > 0 {
				return strings.TrimRight(res.line, "\r\n"), nil
			}
			return "", res.err
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// prompt prints label and reads a single trimmed line.
//
//	Label
//	> _
func (a *App) prompt(ctx context.Context, label string) (string, error) {
	if _, err := fmt.Fprint(a.out, label+"\n> "); err != nil {
		return "", err
	}
	line, err := a.in.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptSecret reads a password without echo when attached to a terminal and
// falls back to a plain line otherwise. The value is not trimmed.
func (a *App) promptSecret(ctx context.Context, label string) (string, error) {
	if a.secretFd < 0 {
		if _, err := fmt.Fprint(a.out, label+"\n> "); err != nil {
			return "", err
		}
		return a.in.ReadLine(ctx)
	}

	if _, err := fmt.Fprint(a.out, label+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(a.secretFd)
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

func (lr *lineReader) Close() {
	close(lr.requests)
}
