// Package ipc provides the inter-process communication layer to the
// projectFly companion service. It covers the full protocol, which is
// deliberately tiny: connect to a local socket, then write framed binary
// telemetry records. Nothing is read back.
//
// The package is organized into several subpackages:
//
//   - transport: Socket abstractions with a pluggable connector interface
//     and the mutex-guarded connection handle. The unix subpackage holds the
//     production Unix domain socket connector.
//
//   - serializer: Telemetry record serialization with the pinned
//     companion-service wire format plus a JSON format for diagnostics and
//     replay files.
//
//   - client: The high-level client tying transport and serializer together
//     into the connect/send pair embedding applications use.
package ipc
