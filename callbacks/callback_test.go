package callbacks_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/effective-security/x/values"
	"github.com/effective-security/xlog"
	"github.com/madisonbullard/mcp-server-shortcut/callbacks"
	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	ctx := context.Background()
	tool := &fakeTool{name: "get-iteration"}

	var buf bytes.Buffer
	cb := callbacks.NewPrinter(&buf, callbacks.ModeVerbose)
	cb.OnToolStart(ctx, tool, `{"iterationPublicId":1}`)
	cb.OnToolEnd(ctx, tool, `{"iterationPublicId":1}`, "Iteration: 1")
	cb.OnToolError(ctx, tool, `{"iterationPublicId":999}`, errors.New("test error"))

	res := buf.String()
	assert.Contains(t, res, "Tool Start: get-iteration")
	assert.Contains(t, res, `Input: {"iterationPublicId":1}`)
	assert.Contains(t, res, "Tool End: get-iteration")
	assert.Contains(t, res, "Output: Iteration: 1")
	assert.Contains(t, res, "Tool Error: get-iteration: test error")

	buf.Reset()
	cb = callbacks.NewPrinter(&buf, callbacks.ModeDefault)
	cb.OnToolStart(ctx, tool, "input")
	cb.OnToolEnd(ctx, tool, "input", "output")
	assert.Equal(t, "Tool Start: get-iteration\nTool End: get-iteration\n", buf.String())
}

func TestFanout(t *testing.T) {
	ctx := context.Background()
	tool := &fakeTool{name: "search-iterations"}

	var buf1, buf2 bytes.Buffer
	fanout := callbacks.NewFanout(callbacks.NewPrinter(&buf1, callbacks.ModeDefault))
	fanout.Add(callbacks.NewPrinter(&buf2, callbacks.ModeDefault))
	fanout.Add(callbacks.NewNoop())
	fanout.Add(callbacks.NewPackageLogger(xlog.NewPackageLogger("github.com/madisonbullard/mcp-server-shortcut", "callbacks_test")))

	fanout.OnToolStart(ctx, tool, "{}")
	fanout.OnToolEnd(ctx, tool, "{}", "Result: No iterations found.")
	fanout.OnToolError(ctx, tool, "{}", errors.New("boom"))

	exp := "Tool Start: search-iterations\nTool End: search-iterations\nTool Error: search-iterations: boom\n"
	assert.Equal(t, exp, buf1.String())
	assert.Equal(t, exp, buf2.String())
}

type fakeTool struct {
	name        string
	description string
}

func (f *fakeTool) Name() string {
	return f.name
}
func (f *fakeTool) Description() string {
	return values.StringsCoalesce(f.description, "useful tool")
}
func (f *fakeTool) Parameters() any {
	return nil
}
func (f *fakeTool) Call(context.Context, string) (string, error) {
	return "", nil
}
