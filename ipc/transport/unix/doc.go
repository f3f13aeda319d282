// Package unix implements the transport connector for the projectFly IPC
// channel using Unix domain sockets. The companion service only listens on a
// local domain socket, so this is the production transport.
//
// This package provides the connector only; connection ownership, write
// serialization and error classification live in the parent transport
// package.
package unix
