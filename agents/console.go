package agents

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/google/uuid"

	"github.com/ZIZO17z/mia/log"
)

// ConsoleSession is a text stand-in for the realtime room runtime: it runs
// the same instructions and tool set over stdin/stdout so the assistant is
// usable without a media transport. Voice and room-input options are
// accepted and logged but have no audio counterpart here.
type ConsoleSession struct {
	genkit *genkit.Genkit
	model  ai.Model
	in     io.Reader
	out    io.Writer

	opts      SessionOptions
	history   []*ai.Message
	sessionID string
}

// NewConsoleSession creates a console session on the given model
func NewConsoleSession(gk *genkit.Genkit, model ai.Model, in io.Reader, out io.Writer) *ConsoleSession {
	return &ConsoleSession{
		genkit: gk,
		model:  model,
		in:     in,
		out:    out,
	}
}

// Start records the session options and assigns a session id
func (s *ConsoleSession) Start(ctx context.Context, opts SessionOptions) error {
	s.opts = opts
	s.sessionID = uuid.NewString()

	ctx = log.WithSessionID(ctx, s.sessionID)
	log.Infof(ctx, "Session started: voice=%s temperature=%.1f video=%t noise_cancellation=%t tools=%d",
		opts.Realtime.Voice, opts.Realtime.Temperature,
		opts.RoomInput.VideoEnabled, opts.RoomInput.NoiseCancellation, len(opts.Tools))

	return nil
}

// GenerateReply produces one assistant turn for the given instructions and
// prints it.
func (s *ConsoleSession) GenerateReply(ctx context.Context, instructions string) error {
	ctx = log.WithSessionID(ctx, s.sessionID)

	genOpts := []ai.GenerateOption{
		ai.WithModel(s.model),
		ai.WithMessages(s.history...),
		ai.WithPrompt(instructions),
		ai.WithTools(s.opts.Tools...),
		ai.WithMaxTurns(8),
		ai.WithConfig(map[string]any{"temperature": s.opts.Realtime.Temperature}),
	}
	// Replayed history already carries the system message from the first
	// turn; sending it again would stack one persona copy per turn.
	if len(s.history) == 0 {
		genOpts = append(genOpts, ai.WithSystem(s.opts.Instructions))
	}

	response, err := genkit.Generate(ctx, s.genkit, genOpts...)
	if err != nil {
		return fmt.Errorf("reply generation failed: %w", err)
	}

	s.history = response.History()
	fmt.Fprintln(s.out, response.Text())

	return nil
}

// Run reads user turns until EOF or context cancellation
func (s *ConsoleSession) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)

	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := s.GenerateReply(ctx, line); err != nil {
			log.Errorf(log.WithSessionID(ctx, s.sessionID), "Turn failed: %v", err)
			fmt.Fprintln(s.out, "Sorry, something went wrong with that request.")
		}
	}

	return scanner.Err()
}
