package tools

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/madisonbullard/mcp-server-shortcut/encoding"
	"github.com/madisonbullard/mcp-server-shortcut/utils"
	mcp "github.com/metoro-io/mcp-golang"
)

// ITool is a tool exposed to the agent runtime.
type ITool interface {
	// Name returns the name of the Tool.
	Name() string
	// Description returns the description of the tool, advertised to the agent.
	Description() string
	// Parameters returns the JSON schema of the tool input.
	Parameters() any

	// Call executes the tool with the given JSON input and returns the text payload.
	// If the tool fails to parse the input, it returns ErrFailedUnmarshalInput error.
	Call(context.Context, string) (string, error)
}

// Callback receives the tool call events.
type Callback interface {
	OnToolStart(ctx context.Context, tool ITool, input string)
	OnToolEnd(ctx context.Context, tool ITool, input string, output string)
	OnToolError(ctx context.Context, tool ITool, input string, err error)
}

// Exampler is implemented by tools that provide an example input.
type Exampler interface {
	Example() any
}

// IMCPTool is an interface that extends ITool to include functionality for
// registering the tool with an MCP server.
type IMCPTool interface {
	ITool
	RegisterMCP(registrator McpServerRegistrator) error
}

// MCPTool is an MCP tool with typed input.
type MCPTool[I any] interface {
	IMCPTool
	RunMCP(context.Context, *I) (*mcp.ToolResponse, error)
}

type toolDescription struct {
	Name        string `json:"Name" yaml:"Name" toml:"Name"`
	Description string `json:"Description" yaml:"Description" toml:"Description"`
	Parameters  any    `json:"Parameters,omitempty" yaml:"Parameters,omitempty" toml:"Parameters,omitempty"`
	Example     any    `json:"Example,omitempty" yaml:"Example,omitempty" toml:"Example,omitempty"`
}

type toolsDescription struct {
	Tools []toolDescription `json:"Tools" yaml:"Tools" toml:"Tools"`
}

// GetDescriptions returns the names and descriptions of the tools as fenced JSON.
func GetDescriptions(list ...ITool) string {
	var d toolsDescription
	for _, tool := range list {
		d.Tools = append(d.Tools, toolDescription{
			Name:        tool.Name(),
			Description: tool.Description(),
		})
	}
	return utils.BackticksJSON(utils.ToJSONIndent(d))
}

// Catalog returns the tools with their input schemas and example inputs,
// in the format supported by the encoding package.
func Catalog(format encoding.Format, list ...ITool) (string, error) {
	enc, err := encoding.New(format)
	if err != nil {
		return "", err
	}

	var d toolsDescription
	for _, tool := range list {
		desc := toolDescription{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  plain(tool.Parameters()),
		}
		if ex, ok := tool.(Exampler); ok {
			desc.Example = plain(ex.Example())
		}
		d.Tools = append(d.Tools, desc)
	}

	bs, err := enc.Marshal(d)
	if err != nil {
		return "", errors.Wrapf(err, "failed to render catalog as %s", format)
	}
	return string(bs), nil
}

// plain converts the value to maps, so it renders in any format
func plain(v any) any {
	if v == nil {
		return nil
	}
	js, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var res any
	if err = json.Unmarshal(js, &res); err != nil {
		return nil
	}
	return res
}
