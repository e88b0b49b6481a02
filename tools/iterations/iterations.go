package iterations

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/madisonbullard/mcp-server-shortcut/shortcut"
	"github.com/madisonbullard/mcp-server-shortcut/tools"
	mcp "github.com/metoro-io/mcp-golang"
)

var logger = xlog.NewPackageLogger("github.com/madisonbullard/mcp-server-shortcut/tools", "iterations")

// Tool names
const (
	ToolGetIterationStories = "get-iteration-stories"
	ToolGetIteration        = "get-iteration"
	ToolSearchIterations    = "search-iterations"
)

// IterationTools holds the handlers of the iteration tools.
// It has no state besides the client, and is safe for concurrent calls.
type IterationTools struct {
	client shortcut.Client

	getIterationStories *tools.Tool[IterationInput]
	getIteration        *tools.Tool[IterationInput]
	searchIterations    *tools.Tool[SearchIterationsInput]
}

// New returns the iteration tools backed by the client.
func New(client shortcut.Client) *IterationTools {
	t := &IterationTools{client: client}

	t.getIterationStories = mustTool(tools.NewTool(ToolGetIterationStories,
		"Get stories in a specific iteration by iteration public ID",
		func(ctx context.Context, in *IterationInput) (*mcp.ToolResponse, error) {
			return t.GetIterationStories(ctx, in.IterationPublicID)
		}))
	t.getIteration = mustTool(tools.NewTool(ToolGetIteration,
		"Get a Shortcut iteration by public ID",
		func(ctx context.Context, in *IterationInput) (*mcp.ToolResponse, error) {
			return t.GetIteration(ctx, in.IterationPublicID)
		}))
	t.searchIterations = mustTool(tools.NewTool(ToolSearchIterations,
		"Find Shortcut iterations.",
		func(ctx context.Context, in *SearchIterationsInput) (*mcp.ToolResponse, error) {
			return t.SearchIterations(ctx, in)
		}))

	return t
}

// Create registers the iteration tools with the server, in the order of Tools,
// and returns the handlers.
func Create(client shortcut.Client, registrator tools.McpServerRegistrator) (*IterationTools, error) {
	t := New(client)
	for _, tool := range t.Tools() {
		if err := tool.RegisterMCP(registrator); err != nil {
			return nil, errors.Wrapf(err, "failed to register tool %s", tool.Name())
		}
	}
	return t, nil
}

// WithCallback sets the handler of tool call events on every tool.
func (t *IterationTools) WithCallback(cb tools.Callback) *IterationTools {
	t.getIterationStories.WithCallback(cb)
	t.getIteration.WithCallback(cb)
	t.searchIterations.WithCallback(cb)
	return t
}

// Tools returns the tool descriptors.
func (t *IterationTools) Tools() []tools.IMCPTool {
	return []tools.IMCPTool{
		t.getIterationStories,
		t.getIteration,
		t.searchIterations,
	}
}

// GetIterationStories returns the stories of the iteration with their owners.
func (t *IterationTools) GetIterationStories(ctx context.Context, iterationPublicID int64) (*mcp.ToolResponse, error) {
	stories, err := t.client.ListIterationStories(ctx, iterationPublicID)
	if err != nil {
		return nil, err
	}
	if stories == nil {
		return nil, tools.NewRetrievalError("stories in iteration", iterationPublicID)
	}

	members := map[string]*shortcut.Member{}
	if ids := ownerIDs(stories); len(ids) > 0 {
		members, err = t.client.GetUserMap(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	logger.ContextKV(ctx, xlog.DEBUG,
		"iteration", iterationPublicID,
		"stories", len(stories),
		"members", len(members),
	)

	return tools.NewTextResponse(formatStoryList(stories, members)), nil
}

// GetIteration returns the details of the iteration.
func (t *IterationTools) GetIteration(ctx context.Context, iterationPublicID int64) (*mcp.ToolResponse, error) {
	iteration, err := t.client.GetIteration(ctx, iterationPublicID)
	if err != nil {
		return nil, err
	}
	if iteration == nil {
		return nil, tools.NewRetrievalError("iteration", iterationPublicID)
	}
	return tools.NewTextResponse(formatIteration(iteration)), nil
}

// SearchIterations returns the first page of iterations matching the filter.
// The current user is resolved for every search.
func (t *IterationTools) SearchIterations(ctx context.Context, input *SearchIterationsInput) (*mcp.ToolResponse, error) {
	if input == nil {
		input = &SearchIterationsInput{}
	}

	currentUser, err := t.client.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	query := shortcut.BuildSearchQuery(input.Terms(), currentUser)
	logger.ContextKV(ctx, xlog.DEBUG, "query", query)

	res, err := t.client.SearchIterations(ctx, query)
	if err != nil {
		return nil, err
	}
	if res == nil || res.Iterations == nil {
		return nil, tools.NewSearchError("iterations", query)
	}

	return tools.NewTextResponse(formatIterationList(res.Iterations, res.Total)), nil
}

func mustTool[I any](tool *tools.Tool[I], err error) *tools.Tool[I] {
	if err != nil {
		panic(err)
	}
	return tool
}
