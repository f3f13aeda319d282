package transport

import (
	"errors"
	"net"
)

// DefaultSocketPath is the well-known filesystem path of the companion
// service's listening socket. It is a fixed external contract: the service
// always binds here and provides no way to negotiate another address.
const DefaultSocketPath = "/tmp/pf.sock"

// ErrConnect is returned (wrapped) when the companion service socket cannot
// be reached. Callers can test for it with errors.Is to distinguish "no
// companion service present" from later send failures.
var ErrConnect = errors.New("cannot connect to companion service")

// IClientConnector defines the interface for transport-specific connection operations
type IClientConnector interface {
	// Connect establishes a single connection to the given endpoint
	Connect(endpoint string) (net.Conn, error)

	// GetName returns the name of the transport type (e.g., "unix")
	GetName() string
}
