package tools

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrNotFound marks a record or collection that upstream did not return.
	ErrNotFound = errors.New("not found")
	// ErrSearchFailed marks a search that upstream did not return a collection for.
	ErrSearchFailed = errors.New("search failed")
	// ErrInvalidInput marks a tool input that failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrFailedUnmarshalInput is returned by Call when the input is not valid JSON for the tool.
	ErrFailedUnmarshalInput = errors.New("failed to unmarshal input: check the schema and try again")
)

// NewRetrievalError returns ErrNotFound error for the entity:
// "Failed to retrieve Shortcut <entity> with public ID: <id>."
func NewRetrievalError(entity string, id int64) error {
	return errors.Mark(errors.Newf("Failed to retrieve Shortcut %s with public ID: %d.", entity, id), ErrNotFound)
}

// NewSearchError returns ErrSearchFailed error describing the query.
func NewSearchError(entity, query string) error {
	return errors.Mark(errors.Newf("Failed to search for %s matching your query: %q.", entity, query), ErrSearchFailed)
}
