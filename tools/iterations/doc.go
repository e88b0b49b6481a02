// Package iterations provides the MCP tools for Shortcut iterations:
// get-iteration-stories, get-iteration and search-iterations.
package iterations
