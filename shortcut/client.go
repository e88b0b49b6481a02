package shortcut

import (
	"context"
)

//go:generate mockgen -source=client.go -destination=../mocks/mockshortcut/client_mock.gen.go -package mockshortcut

// Client is the subset of the Shortcut API used by the tools.
type Client interface {
	// GetCurrentUser returns the member that owns the API token.
	GetCurrentUser(ctx context.Context) (*Member, error)
	// GetUserMap resolves member IDs with a single upstream call.
	// IDs that cannot be resolved are absent from the returned map.
	GetUserMap(ctx context.Context, ids []string) (map[string]*Member, error)
	// GetIteration returns the iteration, or nil when it does not exist.
	GetIteration(ctx context.Context, iterationPublicID int64) (*Iteration, error)
	// ListIterationStories returns the stories of the iteration,
	// or a nil slice when the upstream collection is absent.
	ListIterationStories(ctx context.Context, iterationPublicID int64) ([]*Story, error)
	// SearchIterations runs the search query and returns the first page of results.
	SearchIterations(ctx context.Context, query string) (*IterationSearchResult, error)
}
