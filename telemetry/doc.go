// Package telemetry defines the flight telemetry record sent to the
// projectFly companion service, along with the bridge type enumeration that
// identifies which simulator integration produced a record.
//
// The package focuses on:
//   - Declaring the exact field set the companion service consumes
//   - Pinning the wire-level size constants shared with the service
//   - Validating the bridge type tag against its known range
//
// Key Components:
//
//   - TelemetryRecord: Flat value struct holding one snapshot of aircraft
//     state. The record carries no identity and no behavior beyond
//     validation; it is built by the caller immediately before sending and
//     consumed whole by a single send.
//
//   - BridgeType: Enumerated source-simulator tag (simconnect, fsuipc,
//     if, xplane). The companion service only understands these four values.
//
// Wire Contract:
//
//	The companion service decodes records positionally, so the declared
//	field order of TelemetryRecord IS the wire format. EncodedSize is the
//	fixed byte length of every encoded record; the serializer package and
//	its tests assert against it to catch accidental schema drift.
package telemetry
