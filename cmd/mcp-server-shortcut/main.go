// Command mcp-server-shortcut is an MCP server with tools for Shortcut iterations.
//
// The server talks MCP over stdio by default, logs are written to stderr.
//
//	SHORTCUT_API_TOKEN=... mcp-server-shortcut
//	mcp-server-shortcut --config config.yaml
//	mcp-server-shortcut --describe --format json
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/madisonbullard/mcp-server-shortcut/callbacks"
	"github.com/madisonbullard/mcp-server-shortcut/config"
	"github.com/madisonbullard/mcp-server-shortcut/encoding"
	"github.com/madisonbullard/mcp-server-shortcut/server"
	"github.com/madisonbullard/mcp-server-shortcut/shortcut"
	"github.com/madisonbullard/mcp-server-shortcut/tools"
	"github.com/madisonbullard/mcp-server-shortcut/tools/iterations"
)

var logger = xlog.NewPackageLogger("github.com/madisonbullard/mcp-server-shortcut", "main")

func main() {
	cfgFile := flag.String("config", "", "path to the YAML or JSON config file")
	envFile := flag.String("env", "", "path to the .env file, defaults to .env in the current directory")
	describe := flag.Bool("describe", false, "print the tool catalog and exit")
	trace := flag.Bool("trace", false, "print tool calls to stderr")
	format := flag.String("format", encoding.FormatYAML, "format of the tool catalog: json, yaml or toml")
	flag.Parse()

	if *describe {
		c, err := catalog(*format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(c)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var opts []server.Option
	if *trace {
		opts = append(opts, server.WithCallback(callbacks.NewPrinter(os.Stderr, callbacks.ModeVerbose)))
	}

	if err := run(ctx, *cfgFile, *envFile, opts...); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgFile, envFile string, opts ...server.Option) error {
	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return errors.Wrap(err, "failed to load .env")
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// stdout is the MCP wire in stdio mode
	xlog.SetFormatter(xlog.NewStringFormatter(os.Stderr))
	xlog.SetGlobalLogLevel(logLevel(cfg.Log.Level))

	client, err := newClient(cfg.Shortcut)
	if err != nil {
		return err
	}

	s, err := server.New(cfg, client, opts...)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.Serve(ctx); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.ContextKV(ctx, xlog.INFO, "status", "shutting_down")
	case err = <-errCh:
	}

	if cerr := s.Close(); cerr != nil {
		logger.ContextKV(ctx, xlog.WARNING, "reason", "close", "err", cerr.Error())
	}
	return err
}

func newClient(cfg config.Shortcut) (*shortcut.RESTClient, error) {
	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return nil, err
	}
	client, err := shortcut.New(cfg.Token)
	if err != nil {
		return nil, err
	}
	return client.
		WithBaseURL(cfg.BaseURL).
		WithHTTPClient(&http.Client{Timeout: timeout}).
		WithSearchPageSize(cfg.SearchPageSize), nil
}

func catalog(format encoding.Format) (string, error) {
	var list []tools.ITool
	for _, t := range iterations.New(nil).Tools() {
		list = append(list, t)
	}
	return tools.Catalog(format, list...)
}

func logLevel(level string) xlog.LogLevel {
	switch level {
	case "DEBUG":
		return xlog.DEBUG
	case "WARNING":
		return xlog.WARNING
	case "ERROR":
		return xlog.ERROR
	default:
		return xlog.INFO
	}
}
