// Package localtransport provides an in-process transport for the MCP server,
// used to embed the server and to call tools without stdio or HTTP.
package localtransport

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/metoro-io/mcp-golang/transport"
)

// Transport implements transport.Transport for a server in the same process.
// HandleMessage delivers a client message to the server and waits for the response.
type Transport struct {
	mu             sync.RWMutex
	messageHandler func(ctx context.Context, message *transport.BaseJsonRpcMessage)
	errorHandler   func(error)
	closeHandler   func()
	pending        map[int64]chan *transport.BaseJsonRpcMessage
	counter        int64
}

// ensure Transport implements the Transport interface
var _ transport.Transport = (*Transport)(nil)

func New() *Transport {
	return &Transport{
		pending: make(map[int64]chan *transport.BaseJsonRpcMessage),
	}
}

// Start does nothing in the local transport
func (t *Transport) Start(ctx context.Context) error {
	return nil
}

// Close implements Transport.Close
func (t *Transport) Close() error {
	t.mu.RLock()
	handler := t.closeHandler
	t.mu.RUnlock()

	if handler != nil {
		handler()
	}
	return nil
}

// SetCloseHandler implements Transport.SetCloseHandler
func (t *Transport) SetCloseHandler(handler func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closeHandler = handler
}

// SetErrorHandler implements Transport.SetErrorHandler
func (t *Transport) SetErrorHandler(handler func(error)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errorHandler = handler
}

// SetMessageHandler implements Transport.SetMessageHandler
func (t *Transport) SetMessageHandler(handler func(ctx context.Context, message *transport.BaseJsonRpcMessage)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messageHandler = handler
}

// Send delivers the server response to the pending HandleMessage call.
// Notifications from the server are dropped.
func (t *Transport) Send(ctx context.Context, message *transport.BaseJsonRpcMessage) error {
	if message == nil {
		return errors.New("message is nil")
	}

	var key transport.RequestId
	switch {
	case message.JsonRpcResponse != nil:
		key = message.JsonRpcResponse.Id
	case message.JsonRpcError != nil:
		key = message.JsonRpcError.Id
	case message.JsonRpcNotification != nil:
		return nil
	default:
		return errors.Newf("unsupported message type: %s", message.Type)
	}

	t.mu.RLock()
	ch := t.pending[int64(key)]
	t.mu.RUnlock()

	if ch == nil {
		return errors.Newf("no response channel found for key: %d", key)
	}

	// the channel is buffered for a single response
	select {
	case ch <- message:
		return nil
	default:
		return errors.Newf("response already sent for key: %d", key)
	}
}

// HandleMessage processes a JSON-RPC request or notification from the client.
// For a request, it blocks until the server responds or ctx is done,
// and returns the response with the client's request ID.
// For a notification, it returns nil message.
func (t *Transport) HandleMessage(ctx context.Context, body []byte) (*transport.BaseJsonRpcMessage, error) {
	var probe struct {
		ID     *json.RawMessage `json:"id"`
		Method string           `json:"method"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, errors.Wrap(err, "invalid JSON-RPC message")
	}
	if probe.Method == "" {
		return nil, errors.New("invalid JSON-RPC message: method is required")
	}

	t.mu.RLock()
	handler := t.messageHandler
	t.mu.RUnlock()
	if handler == nil {
		return nil, errors.New("transport is not connected")
	}

	if probe.ID == nil {
		var notification transport.BaseJSONRPCNotification
		if err := json.Unmarshal(body, &notification); err != nil {
			return nil, errors.Wrap(err, "invalid JSON-RPC notification")
		}
		handler(ctx, transport.NewBaseMessageNotification(&notification))
		return nil, nil
	}

	var request transport.BaseJSONRPCRequest
	if err := json.Unmarshal(body, &request); err != nil {
		return nil, errors.Wrap(err, "invalid JSON-RPC request")
	}

	// requests of concurrent clients may share the ID, the server sees a unique one
	clientID := request.Id
	key := atomic.AddInt64(&t.counter, 1)
	request.Id = transport.RequestId(key)

	ch := make(chan *transport.BaseJsonRpcMessage, 1)
	t.mu.Lock()
	t.pending[key] = ch
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		delete(t.pending, key)
		t.mu.Unlock()
	}()

	handler(ctx, transport.NewBaseMessageRequest(&request))

	select {
	case resp := <-ch:
		switch {
		case resp.JsonRpcResponse != nil:
			resp.JsonRpcResponse.Id = clientID
		case resp.JsonRpcError != nil:
			resp.JsonRpcError.Id = clientID
		}
		return resp, nil
	case <-ctx.Done():
		t.reportError(ctx.Err())
		return nil, errors.WithStack(ctx.Err())
	}
}

func (t *Transport) reportError(err error) {
	t.mu.RLock()
	handler := t.errorHandler
	t.mu.RUnlock()
	if handler != nil {
		handler(err)
	}
}
