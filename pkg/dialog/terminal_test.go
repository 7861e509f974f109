package dialog

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/nudge/pkg/rating"
)

func TestTerminal_Show(t *testing.T) {
	content := rating.Content{Title: "Enjoying the app?", Message: "tell us", Positive: "Rate it", Negative: "Not now"}

	tests := []struct {
		name  string
		input string
		want  rating.Outcome
	}{
		{"yes short", "y\n", rating.Positive},
		{"yes word", "yes\n", rating.Positive},
		{"no short", "n\n", rating.Negative},
		{"no word", "NO\n", rating.Negative},
		{"retry on garbage", "maybe\ny\n", rating.Positive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			term := NewTerminal(strings.NewReader(tt.input), out)

			outcome, err := term.Show(context.Background(), content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, outcome)
			assert.Contains(t, out.String(), "Enjoying the app?")
			assert.Contains(t, out.String(), "tell us")
			assert.Contains(t, out.String(), "[y] Rate it  [n] Not now")
		})
	}
}

func TestTerminal_Show_RetryPrompt(t *testing.T) {
	out := &bytes.Buffer{}
	term := NewTerminal(strings.NewReader("whatever\nn\n"), out)

	outcome, err := term.Show(context.Background(), rating.Content{Title: "t", Positive: "p", Negative: "n"})
	require.NoError(t, err)
	assert.Equal(t, rating.Negative, outcome)
	assert.Contains(t, out.String(), "please answer y or n")
}

func TestTerminal_Show_EOF(t *testing.T) {
	term := NewTerminal(strings.NewReader(""), &bytes.Buffer{})

	_, err := term.Show(context.Background(), rating.Content{Title: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read answer")
}

func TestTerminal_Show_AnswerAfterDismissal(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	out := &bytes.Buffer{}
	term := NewTerminal(pr, out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := term.Show(ctx, rating.Content{Title: "first"})
		done <- err
	}()

	time.Sleep(50 * time.Millisecond) // let the prompt render
	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("show did not return after cancellation")
	}

	// an answer typed after dismissal belongs to the next dialog, the
	// dismissed one must not swallow it
	go func() {
		_, err := pw.Write([]byte("y\n"))
		assert.NoError(t, err)
	}()

	type result struct {
		outcome rating.Outcome
		err     error
	}
	resCh := make(chan result, 1)
	go func() {
		outcome, err := term.Show(context.Background(), rating.Content{Title: "second"})
		resCh <- result{outcome, err}
	}()

	select {
	case res := <-resCh:
		require.NoError(t, res.err)
		assert.Equal(t, rating.Positive, res.outcome)
	case <-time.After(time.Second):
		t.Fatal("answer lost to the dismissed dialog")
	}
}

func TestTerminal_Show_Cancelled(t *testing.T) {
	// pipe never delivers input, the dialog stays pending until cancelled
	pr, pw := io.Pipe()
	defer pw.Close()

	out := &bytes.Buffer{}
	term := NewTerminal(pr, out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := term.Show(ctx, rating.Content{Title: "t"})
		done <- err
	}()

	time.Sleep(50 * time.Millisecond) // let the prompt render
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("show did not return after cancellation")
	}
	assert.Contains(t, out.String(), "(dismissed)")
}
