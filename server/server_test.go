package server_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/madisonbullard/mcp-server-shortcut/callbacks"
	"github.com/madisonbullard/mcp-server-shortcut/config"
	"github.com/madisonbullard/mcp-server-shortcut/mcp/localtransport"
	"github.com/madisonbullard/mcp-server-shortcut/mocks/mockshortcut"
	"github.com/madisonbullard/mcp-server-shortcut/server"
	"github.com/madisonbullard/mcp-server-shortcut/shortcut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Shortcut: config.Shortcut{Token: "test-token"},
	}
	cfg.SetDefaults()
	return cfg
}

type toolResult struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// callTool returns the text of the tool response, or the error message
func callTool(t *testing.T, client *localtransport.Client, name string, args any) string {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := client.Call(ctx, "tools/call", map[string]any{
		"name":      name,
		"arguments": args,
	})
	if err != nil {
		return err.Error()
	}

	var r toolResult
	require.NoError(t, json.Unmarshal(res, &r))
	if len(r.Content) == 0 {
		return string(res)
	}
	return r.Content[0].Text
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockshortcut.NewMockClient(ctrl)

	_, err := server.New(nil, client)
	assert.EqualError(t, err, "config is required")

	_, err = server.New(testConfig(), nil)
	assert.EqualError(t, err, "shortcut client is required")

	cfg := testConfig()
	cfg.Server.Transport = "grpc"
	_, err = server.New(cfg, client)
	assert.EqualError(t, err, "unsupported transport: grpc")

	s, err := server.New(testConfig(), client)
	require.NoError(t, err)
	names := []string{}
	for _, tool := range s.Tools() {
		names = append(names, tool.Name())
	}
	assert.Equal(t, []string{"get-iteration-stories", "get-iteration", "search-iterations"}, names)
}

func TestLocalServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockshortcut.NewMockClient(ctrl)

	tr := localtransport.New()
	s, err := server.New(testConfig(), mock,
		server.WithTransport(tr),
		server.WithCallback(callbacks.NewNoop()),
	)
	require.NoError(t, err)
	require.NoError(t, s.Serve(context.Background()))
	defer func() {
		_ = s.Close()
	}()

	client := localtransport.NewClient(tr)

	t.Run("tools/list", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := client.Call(ctx, "tools/list", map[string]any{})
		require.NoError(t, err)

		var list struct {
			Tools []struct {
				Name        string         `json:"name"`
				Description string         `json:"description"`
				InputSchema map[string]any `json:"inputSchema"`
			} `json:"tools"`
		}
		require.NoError(t, json.Unmarshal(res, &list))

		names := []string{}
		for _, tool := range list.Tools {
			names = append(names, tool.Name)
			assert.NotEmpty(t, tool.Description)
			assert.NotEmpty(t, tool.InputSchema)
		}
		assert.ElementsMatch(t, []string{"get-iteration-stories", "get-iteration", "search-iterations"}, names)

		for _, tool := range list.Tools {
			if tool.Name == "search-iterations" {
				assert.Empty(t, tool.InputSchema["required"])
				continue
			}
			assert.Equal(t, []any{"iterationPublicId"}, tool.InputSchema["required"], tool.Name)
			props, ok := tool.InputSchema["properties"].(map[string]any)
			require.True(t, ok, tool.Name)
			id, ok := props["iterationPublicId"].(map[string]any)
			require.True(t, ok, tool.Name)
			assert.Equal(t, "integer", id["type"])
			assert.EqualValues(t, 1, id["minimum"])
		}
	})

	t.Run("get-iteration", func(t *testing.T) {
		mock.EXPECT().GetIteration(gomock.Any(), int64(1)).Return(&shortcut.Iteration{
			ID:          1,
			Name:        "Iteration 1",
			Description: "Description for Iteration 1",
			StartDate:   "2023-01-01",
			EndDate:     "2023-01-14",
			Status:      shortcut.IterationStatusStarted,
			AppURL:      "https://app.shortcut.com/test/iteration/1",
		}, nil)

		text := callTool(t, client, "get-iteration", map[string]any{"iterationPublicId": 1})
		assert.Contains(t, text, "Iteration: 1")
		assert.Contains(t, text, "Name: Iteration 1")
		assert.Contains(t, text, "Started: Yes")
		assert.Contains(t, text, "Completed: No")
	})

	t.Run("get-iteration not found", func(t *testing.T) {
		mock.EXPECT().GetIteration(gomock.Any(), int64(999)).Return(nil, nil)

		text := callTool(t, client, "get-iteration", map[string]any{"iterationPublicId": 999})
		assert.Contains(t, text, "Failed to retrieve Shortcut iteration with public ID: 999.")
	})

	t.Run("get-iteration-stories", func(t *testing.T) {
		mock.EXPECT().ListIterationStories(gomock.Any(), int64(1)).Return([]*shortcut.Story{
			{ID: 123, Name: "Test Story 1", StoryType: "feature", OwnerIDs: []string{"user1"}},
		}, nil)
		mock.EXPECT().GetUserMap(gomock.Any(), []string{"user1"}).Return(map[string]*shortcut.Member{
			"user1": {ID: "user1", Name: "Test User", MentionName: "testuser"},
		}, nil)

		text := callTool(t, client, "get-iteration-stories", map[string]any{"iterationPublicId": 1})
		assert.Contains(t, text, "Result (1 stories found):")
		assert.Contains(t, text, "sc-123: Test Story 1")
		assert.Contains(t, text, "@testuser")
	})

	t.Run("search-iterations without filters", func(t *testing.T) {
		mock.EXPECT().GetCurrentUser(gomock.Any()).Return(&shortcut.Member{ID: "user1", MentionName: "testuser"}, nil)
		mock.EXPECT().SearchIterations(gomock.Any(), "").Return(&shortcut.IterationSearchResult{
			Iterations: []*shortcut.Iteration{},
		}, nil)

		text := callTool(t, client, "search-iterations", map[string]any{})
		assert.Equal(t, "Result: No iterations found.", text)
	})

	t.Run("invalid input", func(t *testing.T) {
		text := callTool(t, client, "get-iteration", map[string]any{"iterationPublicId": 0})
		assert.Contains(t, text, "invalid input")
	})
}
