package client

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/gopfly/gopfly/ipc/serializer"
	"github.com/gopfly/gopfly/ipc/transport"
	"github.com/gopfly/gopfly/ipc/transport/unix"
	"github.com/gopfly/gopfly/telemetry"
)

var (
	sentTotal     = metrics.GetOrCreateCounter("pfly_records_sent_total")
	failuresTotal = metrics.GetOrCreateCounter("pfly_send_failures_total")
)

// --------------------------------------------------------------------------
// Configuration
// --------------------------------------------------------------------------

// ClientConfig holds the connection parameters for the companion service
type ClientConfig struct {
	// SocketPath is the filesystem path of the companion service's socket
	SocketPath string
}

// DefaultConfig returns the pinned production configuration. The companion
// service always listens at transport.DefaultSocketPath.
func DefaultConfig() ClientConfig {
	return ClientConfig{SocketPath: transport.DefaultSocketPath}
}

// --------------------------------------------------------------------------
// Client
// --------------------------------------------------------------------------

// Client is a connected handle to the projectFly companion service. It owns
// the socket for its whole lifetime and serializes concurrent sends, so one
// Client may be shared across goroutines.
type Client struct {
	config     ClientConfig
	conn       *transport.Connection
	serializer serializer.IRecordSerializer
	sent       *xsync.Counter
	failed     *xsync.Counter
}

// New connects to the companion service and returns a ready client.
// The function takes a config, a connector and a serializer as parameters.
// When no companion service is listening, the returned error wraps
// transport.ErrConnect; no client is produced.
func New(
	config ClientConfig,
	connector transport.IClientConnector,
	ser serializer.IRecordSerializer,
) (*Client, error) {
	if config.SocketPath == "" {
		config.SocketPath = transport.DefaultSocketPath
	}

	conn, err := transport.Open(connector, config.SocketPath)
	if err != nil {
		return nil, err
	}

	return &Client{
		config:     config,
		conn:       conn,
		serializer: ser,
		sent:       xsync.NewCounter(),
		failed:     xsync.NewCounter(),
	}, nil
}

// Connect creates a client with the production defaults: the well-known
// socket path, the Unix domain socket connector and the wire serializer.
func Connect() (*Client, error) {
	return New(DefaultConfig(), unix.NewUnixConnector(), serializer.NewWireSerializer())
}

// --------------------------------------------------------------------------
// Sending
// --------------------------------------------------------------------------

// Send transmits one record to the companion service. It returns true if the
// write succeeded and false otherwise; all failure causes (peer gone, broken
// pipe, unserializable record) collapse into the boolean. Callers that need
// the underlying error should use SendRecord.
func (c *Client) Send(rec *telemetry.TelemetryRecord) bool {
	return c.SendRecord(rec) == nil
}

// SendRecord transmits one record and returns the underlying error on
// failure. There is no retry and no reply: one call is one attempted write
// of one complete record.
func (c *Client) SendRecord(rec *telemetry.TelemetryRecord) error {
	payload, err := c.serializer.Serialize(rec)
	if err != nil {
		c.failed.Inc()
		failuresTotal.Inc()
		return fmt.Errorf("failed to encode telemetry record: %w", err)
	}

	if err := c.conn.Write(payload); err != nil {
		c.failed.Inc()
		failuresTotal.Inc()
		return fmt.Errorf("failed to send telemetry record: %w", err)
	}

	c.sent.Inc()
	sentTotal.Inc()
	return nil
}

// --------------------------------------------------------------------------
// Introspection and Teardown
// --------------------------------------------------------------------------

// Stats returns the number of records sent and the number of failed sends
// over the lifetime of this client
func (c *Client) Stats() (sent, failed uint64) {
	return uint64(c.sent.Value()), uint64(c.failed.Value())
}

// SocketPath returns the endpoint this client is connected to
func (c *Client) SocketPath() string {
	return c.conn.Endpoint()
}

// Close releases the connection to the companion service
func (c *Client) Close() error {
	return c.conn.Close()
}
