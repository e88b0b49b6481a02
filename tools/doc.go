// Package tools defines the MCP tool descriptors: a typed input bound to a handler,
// the registration primitive of the MCP server, input validation, the error taxonomy
// shared by tool handlers, and the tool catalog.
package tools
