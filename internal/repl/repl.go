package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
)

const (
	userLabel = "You: "
	botLabel  = "Bot: "
	banner    = "Type 'exit' to quit."

	// maxLineBytes is the longest line accepted before the session fails.
	maxLineBytes = 1 << 20
)

// Answerer produces a reply for one line of user input.
type Answerer interface {
	Answer(input string) string
}

// Options controls the chat loop.
type Options struct {
	// ReplyDelay is the pause before each reply.
	ReplyDelay time.Duration
	// Color enables colored labels.
	Color  bool
	Logger hclog.Logger
}

// Session is one interactive conversation.
type Session struct {
	answerer Answerer
	opts     Options

	user *color.Color
	bot  *color.Color
}

// New creates a session.
func New(answerer Answerer, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}

	user := color.New(color.FgCyan, color.Bold)
	bot := color.New(color.FgGreen, color.Bold)

	if opts.Color {
		user.EnableColor()
		bot.EnableColor()
	} else {
		user.DisableColor()
		bot.DisableColor()
	}

	return &Session{
		answerer: answerer,
		opts:     opts,
		user:     user,
		bot:      bot,
	}
}

// Run reads lines from in and writes replies to out until in is exhausted,
// the user exits, or ctx is cancelled.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, banner)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	turns := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.user.Fprint(out, userLabel)

		if !scanner.Scan() {
			fmt.Fprintln(out)

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			s.opts.Logger.Debug("input closed", "turns", turns)

			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if isExit(line) {
			s.opts.Logger.Debug("session ended", "turns", turns)
			return nil
		}

		if err := s.wait(ctx); err != nil {
			return err
		}

		s.bot.Fprint(out, botLabel)
		fmt.Fprintln(out, s.answerer.Answer(line))

		turns++
	}
}

func (s *Session) wait(ctx context.Context) error {
	if s.opts.ReplyDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.opts.ReplyDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isExit(line string) bool {
	return strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit")
}
