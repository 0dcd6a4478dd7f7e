package agents

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/stretchr/testify/assert"
)

// defineRecordingModel registers a model that captures every request it
// receives and answers with a fixed line.
func defineRecordingModel(gk *genkit.Genkit, requests *[]*ai.ModelRequest) ai.Model {
	return genkit.DefineModel(gk, "fake/recorder", &ai.ModelOptions{
		Supports: &ai.ModelSupports{Multiturn: true, SystemRole: true, Tools: true},
	}, func(ctx context.Context, req *ai.ModelRequest, cb ai.ModelStreamCallback) (*ai.ModelResponse, error) {
		*requests = append(*requests, req)
		return &ai.ModelResponse{
			Request:      req,
			Message:      ai.NewModelTextMessage("Will do, Sir."),
			FinishReason: ai.FinishReasonStop,
		}, nil
	})
}

func countRole(messages []*ai.Message, role ai.Role) int {
	n := 0
	for _, m := range messages {
		if m.Role == role {
			n++
		}
	}
	return n
}

func TestConsoleSession_SystemMessageOncePerTurn(t *testing.T) {
	ctx := context.Background()
	gk := genkit.Init(ctx)

	var requests []*ai.ModelRequest
	model := defineRecordingModel(gk, &requests)

	var out bytes.Buffer
	session := NewConsoleSession(gk, model, strings.NewReader(""), &out)
	assert.NoError(t, session.Start(ctx, SessionOptions{Instructions: AgentInstruction}))

	for _, turn := range []string{"first", "second", "third"} {
		assert.NoError(t, session.GenerateReply(ctx, turn))
	}

	if assert.Len(t, requests, 3) {
		for i, req := range requests {
			assert.Equal(t, 1, countRole(req.Messages, ai.RoleSystem),
				"request %d must carry the persona exactly once", i+1)
		}

		// Third turn: system + two completed exchanges + the new prompt
		last := requests[2]
		assert.Len(t, last.Messages, 6)
		assert.Equal(t, ai.RoleSystem, last.Messages[0].Role)
		assert.Equal(t, "third", last.Messages[5].Text())
	}

	assert.Equal(t, 3, strings.Count(out.String(), "Will do, Sir."))
}
