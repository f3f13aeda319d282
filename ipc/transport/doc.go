// Package transport defines the interfaces and abstractions for the IPC
// channel to the projectFly companion service. It provides a common contract
// that transport implementations must fulfill, keeping the client
// independent of the concrete socket type.
//
// The package focuses on:
//   - Defining a clear connector interface for protocol-specific dialing
//   - Owning the connected handle and serializing writes on it
//   - Surfacing "no companion service present" as a distinct error
//
// Key Components:
//
//   - IClientConnector: Interface for transport-specific connection
//     operations. The unix subpackage provides the production
//     implementation; tests can substitute their own.
//
//   - Connection: Wrapper around one connected stream socket. Writes take an
//     internal mutex, so one Connection may be shared across goroutines
//     without interleaving record bytes on the stream. There is no read
//     path: the companion service never replies.
//
//   - ErrConnect: Sentinel wrapped into all connection failures so embedding
//     applications can decide whether to abort, retry or degrade.
//
// The companion service listens at DefaultSocketPath. The path is a fixed
// external contract; the endpoint parameter on Open exists so tests and
// diagnostics can point at a different listener.
package transport
