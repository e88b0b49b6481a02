package localtransport

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/metoro-io/mcp-golang/transport"
)

// Client sends JSON-RPC requests over the local transport.
type Client struct {
	transport *Transport
	lastID    int64
}

// NewClient returns a client of the server connected to the transport.
func NewClient(t *Transport) *Client {
	return &Client{transport: t}
}

// Call sends the request and returns the result.
// A JSON-RPC error response is returned as error.
func (c *Client) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	req := transport.BaseJSONRPCRequest{
		Jsonrpc: "2.0",
		Method:  method,
		Id:      transport.RequestId(atomic.AddInt64(&c.lastID, 1)),
	}
	if params != nil {
		js, err := json.Marshal(params)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal params")
		}
		req.Params = js
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request")
	}

	resp, err := c.transport.HandleMessage(ctx, body)
	if err != nil {
		return nil, err
	}
	if resp.JsonRpcError != nil {
		return nil, errors.Newf("%s: %s", method, resp.JsonRpcError.Error.Message)
	}
	if resp.JsonRpcResponse == nil {
		return nil, errors.Newf("%s: unexpected response type: %s", method, resp.Type)
	}

	js, err := json.Marshal(resp.JsonRpcResponse.Result)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal result")
	}
	return js, nil
}
