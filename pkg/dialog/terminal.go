// Package dialog provides presenter implementations for the rating flow.
package dialog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/umputun/nudge/pkg/rating"
)

// Terminal presents dialogs as y/n prompts on a terminal. One dialog at a
// time, concurrent Show calls are serialized. A single reader goroutine owns
// the input stream for the Terminal's lifetime, so a dismissed dialog never
// swallows an answer typed for the next one.
type Terminal struct {
	reader *bufio.Reader
	out    io.Writer

	mu      sync.Mutex
	once    sync.Once
	lines   chan string
	readErr error // set before lines is closed
}

// NewTerminal creates a terminal presenter reading answers from in and
// writing prompts to out
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{reader: bufio.NewReader(in), out: out, lines: make(chan string)}
}

// Show prints the dialog and blocks until the user answers y or n, or ctx is
// cancelled. On cancellation the prompt is withdrawn, already typed input is
// discarded and ctx's error returned; input typed after dismissal is kept for
// the next dialog.
func (t *Terminal) Show(ctx context.Context, content rating.Content) (rating.Outcome, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.once.Do(func() { go t.readLoop() })

	fmt.Fprintf(t.out, "\n%s\n", content.Title)
	if content.Message != "" {
		fmt.Fprintln(t.out, content.Message)
	}
	fmt.Fprintf(t.out, "[y] %s  [n] %s\n> ", content.Positive, content.Negative)

	for {
		select {
		case line, ok := <-t.lines:
			if !ok {
				return rating.Negative, fmt.Errorf("read answer: %w", t.readErr)
			}
			switch strings.ToLower(line) {
			case "y", "yes":
				return rating.Positive, nil
			case "n", "no":
				return rating.Negative, nil
			}
			fmt.Fprintf(t.out, "please answer y or n\n> ")
		case <-ctx.Done():
			t.drain()
			fmt.Fprintln(t.out, "\n(dismissed)")
			return rating.Negative, ctx.Err()
		}
	}
}

// readLoop delivers trimmed input lines to the lines channel and closes it on
// a read error. Runs once per Terminal.
func (t *Terminal) readLoop() {
	for {
		line, err := t.reader.ReadString('\n')
		if line != "" {
			t.lines <- strings.TrimSpace(line)
		}
		if err != nil {
			t.readErr = err
			close(t.lines)
			return
		}
	}
}

// drain discards input already buffered for a dismissed dialog
func (t *Terminal) drain() {
	for {
		select {
		case _, ok := <-t.lines:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
