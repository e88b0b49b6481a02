package tools

//go:generate mockgen -source=registrator.go -destination=../mocks/mocktools/registrator_mock.gen.go -package mocktools

// McpServerRegistrator is the registration primitive of the MCP server.
// The handler must be a func(context.Context, *I) (*mcp.ToolResponse, error),
// the input schema is reflected from I.
type McpServerRegistrator interface {
	RegisterTool(name string, description string, handler any) error
}
