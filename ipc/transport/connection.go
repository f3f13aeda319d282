package transport

import (
	"fmt"
	"net"
	"sync"
)

// Connection wraps one connected stream socket to the companion service.
// All writes go through a mutex, so a single Connection may be shared across
// goroutines without corrupting the record framing on the stream.
type Connection struct {
	conn     net.Conn
	endpoint string
	connMu   sync.Mutex // Protects the connection itself
}

// Open connects to the endpoint using the given connector and returns the
// connected handle. Connection errors wrap ErrConnect. The connect attempt
// blocks until the OS resolves it; no timeout is applied.
func Open(connector IClientConnector, endpoint string) (*Connection, error) {
	conn, err := connector.Connect(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w at %s (%s): %v", ErrConnect, endpoint, connector.GetName(), err)
	}

	return &Connection{
		conn:     conn,
		endpoint: endpoint,
	}, nil
}

// Endpoint returns the address this connection was opened against
func (c *Connection) Endpoint() string {
	return c.endpoint
}

// Write sends the whole payload in one blocking operation. It loops on short
// writes so one call always corresponds to one complete record on the wire.
func (c *Connection) Write(payload []byte) error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn == nil {
		return fmt.Errorf("connection is closed")
	}

	for len(payload) > 0 {
		n, err := c.conn.Write(payload)
		if err != nil {
			return err
		}
		payload = payload[n:]
	}
	return nil
}

// Close releases the underlying socket. Further writes fail.
func (c *Connection) Close() error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn == nil {
		return nil
	}

	err := c.conn.Close()
	c.conn = nil
	return err
}
