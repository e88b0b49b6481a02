// Package server wires the Shortcut client and the iteration tools into an MCP server.
package server

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/madisonbullard/mcp-server-shortcut/callbacks"
	"github.com/madisonbullard/mcp-server-shortcut/config"
	"github.com/madisonbullard/mcp-server-shortcut/shortcut"
	"github.com/madisonbullard/mcp-server-shortcut/tools"
	"github.com/madisonbullard/mcp-server-shortcut/tools/iterations"
	mcp "github.com/metoro-io/mcp-golang"
	"github.com/metoro-io/mcp-golang/transport"
	"github.com/metoro-io/mcp-golang/transport/http"
	"github.com/metoro-io/mcp-golang/transport/stdio"
)

var logger = xlog.NewPackageLogger("github.com/madisonbullard/mcp-server-shortcut", "server")

// Server is the MCP server with the Shortcut tools
type Server struct {
	cfg       config.Server
	server    *mcp.Server
	transport transport.Transport
	tools     *iterations.IterationTools
}

// Option configures the server
type Option func(*options)

type options struct {
	transport transport.Transport
	callback  tools.Callback
}

// WithTransport overrides the transport selected by the config,
// for example with localtransport for an embedded server.
func WithTransport(t transport.Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithCallback adds a handler of tool call events.
// The events are always logged.
func WithCallback(cb tools.Callback) Option {
	return func(o *options) {
		o.callback = cb
	}
}

// New returns the server with the tools registered.
func New(cfg *config.Config, client shortcut.Client, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if client == nil {
		return nil, errors.New("shortcut client is required")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	cb := callbacks.NewFanout(callbacks.NewPackageLogger(logger))
	if o.callback != nil {
		cb.Add(o.callback)
	}

	tr := o.transport
	if tr == nil {
		var err error
		tr, err = newTransport(cfg.Server)
		if err != nil {
			return nil, err
		}
	}

	s := &Server{
		cfg:       cfg.Server,
		transport: tr,
		server: mcp.NewServer(tr,
			mcp.WithName(cfg.Server.Name),
			mcp.WithVersion(cfg.Server.Version),
		),
	}

	it, err := iterations.Create(client, s.server)
	if err != nil {
		return nil, err
	}
	s.tools = it.WithCallback(cb)

	return s, nil
}

func newTransport(cfg config.Server) (transport.Transport, error) {
	switch cfg.Transport {
	case config.TransportStdio, "":
		return stdio.NewStdioServerTransport(), nil
	case config.TransportHTTP:
		return http.NewHTTPTransport(cfg.HTTPEndpoint).WithAddr(cfg.HTTPAddr), nil
	default:
		return nil, errors.Newf("unsupported transport: %s", cfg.Transport)
	}
}

// Serve connects the server to the transport.
// With the http transport it blocks until the listener is closed.
func (s *Server) Serve(ctx context.Context) error {
	logger.ContextKV(ctx, xlog.INFO,
		"status", "serving",
		"name", s.cfg.Name,
		"version", s.cfg.Version,
		"transport", s.cfg.Transport,
		"http_addr", s.cfg.HTTPAddr,
	)
	if err := s.server.Serve(); err != nil {
		return errors.Wrap(err, "failed to serve")
	}
	return nil
}

// Close closes the transport
func (s *Server) Close() error {
	if err := s.transport.Close(); err != nil {
		return errors.Wrap(err, "failed to close transport")
	}
	return nil
}

// Tools returns the registered tools, in registration order
func (s *Server) Tools() []tools.IMCPTool {
	return s.tools.Tools()
}
