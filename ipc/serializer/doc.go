// Package serializer provides telemetry record serialization for the
// projectFly IPC system. It defines a common interface and two
// implementations for converting records to and from bytes.
//
// The package focuses on:
//   - Producing the exact positional binary layout the companion service
//     decodes, byte for byte
//   - Offering a human-readable alternative for diagnostics and replay files
//   - Keeping encoding deterministic and allocation-light
//
// Key Components:
//
//   - IRecordSerializer: Core interface that all serializer implementations
//     must satisfy.
//
//   - wireSerializerImpl: The pinned companion-service format. Fields are
//     written in declaration order with fixed widths (4 bytes per int32
//     field, 8 bytes per float64 field, 1 byte for the bridge type and each
//     boolean, 8 zero-padded bytes for the aircraft type), little endian
//     throughout, with no length prefixes, tags or version markers. Every
//     encoded record is exactly telemetry.EncodedSize bytes. This layout is
//     an external contract shared with an independently evolving service;
//     changing it breaks compatibility.
//
//   - jsonSerializerImpl: JSON encoding of the record, used by the CLI for
//     --dump output and for reading replay files. Never sent to the
//     companion service.
//
// Thread Safety:
//
//	All serializer implementations are stateless and safe for concurrent use
//	across multiple goroutines without additional synchronization.
package serializer
