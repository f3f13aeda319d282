// Package cmd implements the command-line interface for the gopfly
// projectFly bridge client. It provides commands for sending telemetry to
// the companion service and for diagnosing the connection to it.
//
// The package is organized into several subpackages:
//
//   - send: Build one telemetry record from flags and transmit it
//   - stream: Replay a JSON-lines telemetry file over one connection
//   - check: Probe whether the companion service is listening
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See gopfly -help for a list of all commands.
package cmd
