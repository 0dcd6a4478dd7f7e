package agents

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ZIZO17z/mia/tools"
)

// fakeSession records what the assistant hands to the runtime
type fakeSession struct {
	startErr error

	started bool
	opts    SessionOptions
	replies []string
}

func (s *fakeSession) Start(ctx context.Context, opts SessionOptions) error {
	if s.startErr != nil {
		return s.startErr
	}
	s.started = true
	s.opts = opts
	return nil
}

func (s *fakeSession) GenerateReply(ctx context.Context, instructions string) error {
	s.replies = append(s.replies, instructions)
	return nil
}

func TestAssistant_Start(t *testing.T) {
	assistant := NewAssistant(tools.NewRegistry(), RealtimeOptions{Voice: "Aoede", Temperature: 0.8})
	session := &fakeSession{}

	err := assistant.Start(context.Background(), session)
	assert.NoError(t, err)
	assert.True(t, session.started)

	// Persona, voice and room input options are handed over verbatim
	assert.Equal(t, AgentInstruction, session.opts.Instructions)
	assert.True(t, session.opts.RoomInput.VideoEnabled)
	assert.True(t, session.opts.RoomInput.NoiseCancellation)
	assert.Equal(t, "Aoede", session.opts.Realtime.Voice)
	assert.Equal(t, 0.8, session.opts.Realtime.Temperature)

	// Exactly one greeting is issued on start
	assert.Equal(t, []string{SessionInstruction}, session.replies)
}

func TestAssistant_Start_Twice(t *testing.T) {
	assistant := NewAssistant(tools.NewRegistry(), RealtimeOptions{})
	session := &fakeSession{}

	assert.NoError(t, assistant.Start(context.Background(), session))

	err := assistant.Start(context.Background(), session)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already started")
	assert.Len(t, session.replies, 1)
}

func TestAssistant_Start_SessionFailure(t *testing.T) {
	assistant := NewAssistant(tools.NewRegistry(), RealtimeOptions{})
	session := &fakeSession{startErr: fmt.Errorf("room unavailable")}

	err := assistant.Start(context.Background(), session)
	assert.Error(t, err)
	assert.Empty(t, session.replies)

	// A failed start leaves the assistant restartable
	retry := &fakeSession{}
	assert.NoError(t, assistant.Start(context.Background(), retry))
}

func TestAssistant_RealtimeOverrides(t *testing.T) {
	assistant := NewAssistant(tools.NewRegistry(), RealtimeOptions{Voice: "Melody", Temperature: 0.5})
	session := &fakeSession{}

	assert.NoError(t, assistant.Start(context.Background(), session))
	assert.Equal(t, "Melody", session.opts.Realtime.Voice)
	assert.Equal(t, 0.5, session.opts.Realtime.Temperature)
}

func TestAssistant_ZeroTemperaturePreserved(t *testing.T) {
	assistant := NewAssistant(tools.NewRegistry(), RealtimeOptions{Voice: "Aoede", Temperature: 0})
	session := &fakeSession{}

	assert.NoError(t, assistant.Start(context.Background(), session))
	assert.Zero(t, session.opts.Realtime.Temperature)
}
