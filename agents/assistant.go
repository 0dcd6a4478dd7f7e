// Package agents holds the assistant facade: persona, realtime voice
// configuration and the contract handed to the session runtime.
package agents

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"

	"github.com/ZIZO17z/mia/tools"
)

// RealtimeOptions selects the realtime voice model configuration
type RealtimeOptions struct {
	Voice       string
	Temperature float64
}

// RoomInputOptions configures the media input of the room session
type RoomInputOptions struct {
	VideoEnabled      bool
	NoiseCancellation bool
}

// SessionOptions is everything the runtime needs to drive a session
type SessionOptions struct {
	Instructions string
	Realtime     RealtimeOptions
	RoomInput    RoomInputOptions
	Tools        []ai.ToolRef
}

// Session is the external orchestration runtime's contract. Turn-taking,
// tool dispatch and termination are owned by the implementation.
type Session interface {
	Start(ctx context.Context, opts SessionOptions) error
	GenerateReply(ctx context.Context, instructions string) error
}

// Assistant declares the persona and hands the registered tools to a
// session runtime. The only state it keeps is whether it has started.
type Assistant struct {
	instructions string
	greeting     string
	registry     *tools.Registry
	realtime     RealtimeOptions
	started      bool
}

// NewAssistant creates the assistant facade over a tool registry. Voice and
// temperature are handed to the session untouched; defaults live in the
// configuration layer so an explicit zero temperature survives.
func NewAssistant(registry *tools.Registry, realtime RealtimeOptions) *Assistant {
	return &Assistant{
		instructions: AgentInstruction,
		greeting:     SessionInstruction,
		registry:     registry,
		realtime:     realtime,
	}
}

// Start begins the session with video input and noise cancellation enabled,
// then issues the one-time greeting. Starting twice is an error.
func (a *Assistant) Start(ctx context.Context, session Session) error {
	if a.started {
		return fmt.Errorf("assistant session already started")
	}

	var toolRefs []ai.ToolRef
	for _, tool := range a.registry.GetTools() {
		toolRefs = append(toolRefs, tool)
	}

	err := session.Start(ctx, SessionOptions{
		Instructions: a.instructions,
		Realtime:     a.realtime,
		RoomInput: RoomInputOptions{
			VideoEnabled:      true,
			NoiseCancellation: true,
		},
		Tools: toolRefs,
	})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	a.started = true

	return session.GenerateReply(ctx, a.greeting)
}
