// Package shortcut provides the Shortcut API boundary used by the MCP tools:
// read-only entity snapshots (iterations, stories, members), the Client interface,
// a REST implementation of it, and the search query builder.
package shortcut
