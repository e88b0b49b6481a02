package tools

import (
	"strings"

	mcp "github.com/metoro-io/mcp-golang"
)

// NewTextResponse wraps the payload into a response with a single text content.
func NewTextResponse(text string) *mcp.ToolResponse {
	return mcp.NewToolResponse(mcp.NewTextContent(text))
}

// Text returns the text contents of the response, joined by newline.
func Text(resp *mcp.ToolResponse) string {
	if resp == nil {
		return ""
	}
	var parts []string
	for _, c := range resp.Content {
		if c != nil && c.Type == mcp.ContentTypeText && c.TextContent != nil {
			parts = append(parts, c.TextContent.Text)
		}
	}
	return strings.Join(parts, "\n")
}
