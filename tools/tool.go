package tools

import "context"

// ToolExecutor is the function signature for executing a tool.
//
// The returned string is the tool's complete result: tools convert their own
// failures into descriptive text, so a non-nil error here means the runtime
// broke the calling contract (unknown tool, malformed arguments), never that
// the tool itself failed.
type ToolExecutor func(ctx context.Context, args map[string]interface{}) (string, error)
