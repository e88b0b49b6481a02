package tools

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/madisonbullard/mcp-server-shortcut/encoding"
	jsonenc "github.com/madisonbullard/mcp-server-shortcut/encoding/json"
	"github.com/madisonbullard/mcp-server-shortcut/pkg/metricskey"
	"github.com/madisonbullard/mcp-server-shortcut/pkg/schema"
	"github.com/madisonbullard/mcp-server-shortcut/utils"
	mcp "github.com/metoro-io/mcp-golang"
)

// Handler handles a tool call with validated input.
type Handler[I any] func(ctx context.Context, input *I) (*mcp.ToolResponse, error)

// Tool binds a name, description and input schema to a handler.
type Tool[I any] struct {
	name        string
	description string
	schema      *schema.Schema
	handler     Handler[I]
	callback    Callback
}

// ensure Tool implements the MCPTool interface
var _ MCPTool[struct{}] = (*Tool[struct{}])(nil)

// NewTool returns a tool descriptor with the input schema reflected from I.
func NewTool[I any](name, description string, handler Handler[I]) (*Tool[I], error) {
	if name == "" {
		return nil, errors.New("tool name is required")
	}
	if handler == nil {
		return nil, errors.Newf("tool %s: handler is required", name)
	}

	sc, err := schema.For[I]()
	if err != nil {
		return nil, errors.Wrapf(err, "tool %s: failed to create schema", name)
	}

	return &Tool[I]{
		name:        name,
		description: description,
		schema:      sc,
		handler:     handler,
	}, nil
}

// WithCallback sets the handler of tool call events.
func (t *Tool[I]) WithCallback(cb Callback) *Tool[I] {
	t.callback = cb
	return t
}

func (t *Tool[I]) Name() string {
	return t.name
}

func (t *Tool[I]) Description() string {
	return t.description
}

func (t *Tool[I]) Parameters() any {
	return t.schema.Parameters
}

// RegisterMCP registers RunMCP as the dispatch entry of the tool.
func (t *Tool[I]) RegisterMCP(registrator McpServerRegistrator) error {
	return registrator.RegisterTool(t.name, t.description, t.RunMCP)
}

// RunMCP validates the input and calls the handler with it.
// The handler's response or error is returned as is.
func (t *Tool[I]) RunMCP(ctx context.Context, input *I) (*mcp.ToolResponse, error) {
	ctx = WithCallID(ctx)
	started := time.Now()
	defer metricskey.PerfToolCall.MeasureSince(started, t.name)

	payload := utils.ToJSON(input)
	if t.callback != nil {
		t.callback.OnToolStart(ctx, t, payload)
	}

	resp, err := t.run(ctx, input)
	if err != nil {
		metricskey.StatsToolCallsFailed.IncrCounter(1, t.name)
		if t.callback != nil {
			t.callback.OnToolError(ctx, t, payload, err)
		}
		return nil, err
	}

	metricskey.StatsToolCallsSucceeded.IncrCounter(1, t.name)
	if t.callback != nil {
		t.callback.OnToolEnd(ctx, t, payload, Text(resp))
	}
	return resp, nil
}

func (t *Tool[I]) run(ctx context.Context, input *I) (*mcp.ToolResponse, error) {
	if input == nil {
		return nil, errors.Mark(errors.New("invalid input: input is required"), ErrInvalidInput)
	}
	if err := Validate(input); err != nil {
		return nil, err
	}
	return t.handler(ctx, input)
}

// Example returns an input populated from the `fake` tags of I,
// or nil if it cannot be generated.
func (t *Tool[I]) Example() any {
	ex, err := encoding.Example[I]()
	if err != nil {
		return nil
	}
	return ex
}

// Call decodes the JSON input, runs the tool and returns the text payload.
// The input may be fenced or surrounded by text.
func (t *Tool[I]) Call(ctx context.Context, input string) (string, error) {
	var req I
	if err := jsonenc.NewEncoder().Unmarshal([]byte(input), &req); err != nil {
		return "", errors.WithStack(ErrFailedUnmarshalInput)
	}
	resp, err := t.RunMCP(ctx, &req)
	if err != nil {
		return "", err
	}
	return Text(resp), nil
}
