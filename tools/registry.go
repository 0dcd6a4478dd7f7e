package tools

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
)

// Registry manages the set of tools handed to the orchestration runtime
type Registry struct {
	tools     []ai.Tool
	executors map[string]ToolExecutor
}

// NewRegistry creates a new tool registry
func NewRegistry() *Registry {
	return &Registry{
		tools:     make([]ai.Tool, 0),
		executors: make(map[string]ToolExecutor),
	}
}

// Register adds a tool to the registry with its executor
func (r *Registry) Register(tool ai.Tool, executor ToolExecutor) {
	r.tools = append(r.tools, tool)
	r.executors[tool.Definition().Name] = executor
}

// GetTools returns all registered tools
func (r *Registry) GetTools() []ai.Tool {
	return r.tools
}

// ExecuteTool runs a registered tool by name
func (r *Registry) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	executor, ok := r.executors[name]
	if !ok {
		return "", fmt.Errorf("tool not found: %s", name)
	}
	return executor(ctx, args)
}
