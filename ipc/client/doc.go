// Package client provides the high-level client for the projectFly
// companion service. It ties the transport and serializer packages together
// into the two operations the service supports: connect, then send framed
// telemetry records.
//
// The protocol is intentionally minimal. The service never replies, there is
// no handshake and no versioning; a client connects to the well-known socket
// and writes fixed-size binary records. Consequently this package has no
// read path, no reconnection logic and no request correlation - retry
// policy, if wanted, belongs to the embedding application.
//
// Usage:
//
//	c, err := client.Connect()
//	if err != nil {
//		// no companion service present (errors.Is(err, transport.ErrConnect))
//	}
//	defer c.Close()
//
//	ok := c.Send(&telemetry.TelemetryRecord{
//		Altitude:     569,
//		Latitude:     43.6772222,
//		Longitude:    -79.6305556,
//		GForce:       1000,
//		BridgeType:   telemetry.BridgeXPlane,
//		IsOnGround:   true,
//		FPS:          120,
//		AircraftType: "B77W",
//	})
//
// Thread Safety:
//
//	A Client serializes writes internally, so a single instance may be
//	shared across goroutines. Records passed to Send are read, never
//	retained.
package client
