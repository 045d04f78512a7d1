package tools

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Result is the outcome of a tool operation before it is shaped into an MCP
// response. A Result is either Ok text or an Empty soft failure; hard
// failures travel as the error alongside it.
type Result struct {
	text  string
	empty string
}

// Ok wraps successful text content.
func Ok(text string) Result {
	return Result{text: text}
}

// Empty marks a soft failure: the call succeeded but the domain result is
// empty. The reason is surfaced verbatim with isError set.
func Empty(reason string) Result {
	return Result{empty: reason}
}

// runTool executes one tool operation and collapses success, soft failure
// and hard failure into the two-shape wire response. Handlers never surface
// a Go error to the MCP host; every failure becomes a well-formed result.
func runTool(op string, fn func() (Result, error)) *mcp.CallToolResult {
	res, err := fn()
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "Unknown error occurred"
		}
		return errorResult(fmt.Sprintf("Error running %s: %s", op, msg))
	}
	if res.empty != "" {
		return errorResult(res.empty)
	}
	return textResult(res.text)
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}

func textResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
