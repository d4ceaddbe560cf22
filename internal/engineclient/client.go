package engineclient

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/arsalion01/blueprintgo/internal/ctxlog"
	"github.com/arsalion01/blueprintgo/internal/workflow"
)

const (
	importEvent   = "workflow:import"
	importedEvent = "workflow:imported"

	defaultTimeout = 10 * time.Second
)

// Client deploys serialized workflow graphs to an engine instance.
type Client struct {
	baseURL   string
	path      string
	namespace string
	timeout   time.Duration
}

// opResult carries the outcome of one deploy through the done channel.
type opResult struct {
	ack any
	err error
}

// New builds a client for the engine at rawURL. The URL path, if any,
// becomes the socket.io handshake path.
func New(rawURL, namespace string, timeout time.Duration) (*Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse engine URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("engine URL %q needs a scheme and host", rawURL)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   fmt.Sprintf("%s://%s", parsed.Scheme, parsed.Host),
		path:      parsed.Path,
		namespace: namespace,
		timeout:   timeout,
	}, nil
}

// Deploy pushes one graph and waits for the engine's import acknowledgement
// or the timeout, whichever comes first.
func (c *Client) Deploy(ctx context.Context, g *workflow.Graph) error {
	logger := ctxlog.FromContext(ctx).With("graph", g.Name, "url", c.baseURL)
	logger.Debug("Deploy started")
	defer logger.Debug("Deploy finished")

	payload, err := workflow.Serialize(g)
	if err != nil {
		return err
	}

	var isConnected atomic.Bool
	done := make(chan opResult, 1)

	opCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := socket.DefaultOptions()
	if c.path != "" {
		opts.SetPath(c.path)
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(c.baseURL, opts)
	io := manager.Socket(c.namespace, opts)
	defer func() {
		logger.Debug("Disconnecting engine client")
		io.Disconnect()
	}()

	io.On(types.EventName("connect"), func(...any) {
		isConnected.Store(true)
		logger.Info("Connected to engine", "namespace", c.namespace, "sid", io.Id())
		io.Emit(importEvent, payload)
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		if len(errs) > 0 {
			if err, ok := errs[0].(error); ok {
				done <- opResult{err: err}
				return
			}
		}
		done <- opResult{err: fmt.Errorf("engine connection failed")}
	})

	io.On(types.EventName(importedEvent), func(data ...any) {
		var ack any
		if len(data) > 0 {
			ack = data[0]
		}
		done <- opResult{ack: ack}
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		if isConnected.Load() {
			return fmt.Errorf("timed out waiting for %q after connecting", importedEvent)
		}
		return fmt.Errorf("timed out waiting for initial engine connection")
	case res := <-done:
		if res.err != nil {
			return fmt.Errorf("engine rejected graph %q: %w", g.Name, res.err)
		}
		logger.Info("Graph imported", "ack", res.ack)
		return nil
	}
}
