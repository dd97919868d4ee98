// Package repl runs the interactive read-respond-print loop.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/petasbytes/taskchat/internal/logging"
	"github.com/petasbytes/taskchat/memory"
)

// DefaultPrompt is printed before each line is read.
const DefaultPrompt = "You: "

// Agent answers one user turn given the prior history.
type Agent interface {
	Respond(ctx context.Context, history *memory.History, input string) (string, error)
}

// Loop owns the conversation history. Turns are strictly sequential: the next
// line is not read until the current answer has been printed and recorded.
type Loop struct {
	Agent   Agent
	History *memory.History
	In      io.Reader
	Out     io.Writer
	Prompt  string
	Logger  *slog.Logger
}

// Run reads lines until end of input or ctx is cancelled, both of which
// return nil. An agent error ends the loop immediately; that turn is neither
// printed nor recorded.
func (l *Loop) Run(ctx context.Context) error {
	if l.History == nil {
		l.History = &memory.History{}
	}
	prompt := l.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	logger := l.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	lines, readErr := readLines(l.In)

	for {
		fmt.Fprint(l.Out, prompt)

		var (
			input string
			ok    bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(l.Out)
			return nil
		case input, ok = <-lines:
			if !ok {
				fmt.Fprintln(l.Out)
				if err := <-readErr; err != nil {
					logger.Warn("stdin read error", logging.Err(err))
				}
				return nil
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		answer, err := l.Agent.Respond(ctx, l.History, input)
		if err != nil {
			if ctx.Err() != nil {
				fmt.Fprintln(l.Out)
				return nil
			}
			return fmt.Errorf("turn %d: %w", l.History.Len()/2+1, err)
		}
		fmt.Fprintln(l.Out, answer)
		l.History.Append(input, answer)
	}
}

// readLines feeds lines from r into a channel so the loop can also watch for
// cancellation. The channel is closed at end of input; the scanner error, if
// any, is then sent on the second channel.
func readLines(r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
		errc <- scanner.Err()
	}()
	return lines, errc
}
