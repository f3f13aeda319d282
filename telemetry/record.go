package telemetry

import (
	"fmt"
)

// --------------------------------------------------------------------------
// Wire Constants
// --------------------------------------------------------------------------

const (
	// AircraftTypeLen is the fixed byte width of the aircraft type field on
	// the wire. Aircraft type codes are short identifiers ("B77W", "A20N"),
	// padded with zero bytes and truncated if longer.
	AircraftTypeLen = 8

	// EncodedSize is the exact byte length of one encoded record:
	// 15 int32 fields, 2 float64 fields, 1 bridge type byte, 3 boolean
	// bytes and the fixed-width aircraft type.
	EncodedSize = 15*4 + 2*8 + 1 + 3 + AircraftTypeLen
)

// --------------------------------------------------------------------------
// Bridge Type
// --------------------------------------------------------------------------

// BridgeType identifies which simulator integration produced a record.
// The values match the bridgeTypes array of the companion service and must
// not be reordered.
type BridgeType uint8

const (
	BridgeSimConnect BridgeType = iota
	BridgeFSUIPC
	BridgeInfiniteFlight
	BridgeXPlane
)

// String returns the companion service's name for the bridge type
func (b BridgeType) String() string {
	switch b {
	case BridgeSimConnect:
		return "simconnect"
	case BridgeFSUIPC:
		return "fsuipc"
	case BridgeInfiniteFlight:
		return "if"
	case BridgeXPlane:
		return "xplane"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(b))
	}
}

// Valid reports whether the bridge type is one of the four known values
func (b BridgeType) Valid() bool {
	return b <= BridgeXPlane
}

// ParseBridgeType converts a bridge type name to its BridgeType value.
// It returns an error for names the companion service does not know.
func ParseBridgeType(s string) (BridgeType, error) {
	switch s {
	case "simconnect":
		return BridgeSimConnect, nil
	case "fsuipc":
		return BridgeFSUIPC, nil
	case "if":
		return BridgeInfiniteFlight, nil
	case "xplane":
		return BridgeXPlane, nil
	default:
		return 0, fmt.Errorf("invalid bridge type %q, must be one of simconnect, fsuipc, if, xplane", s)
	}
}

// --------------------------------------------------------------------------
// Telemetry Record
// --------------------------------------------------------------------------

// TelemetryRecord is one snapshot of aircraft state as the companion service
// expects it. Field order matters: the service decodes records positionally,
// so the order below is the wire order.
type TelemetryRecord struct {
	Altitude             int32      `json:"altitude"`             // feet MSL
	AGL                  int32      `json:"agl"`                  // feet above ground
	Groundspeed          int32      `json:"groundspeed"`          // knots
	IAS                  int32      `json:"ias"`                  // knots indicated
	HeadingTrue          int32      `json:"headingTrue"`          // degrees
	HeadingMagnetic      int32      `json:"headingMagnetic"`      // degrees
	Latitude             float64    `json:"latitude"`             // decimal degrees
	Longitude            float64    `json:"longitude"`            // decimal degrees
	VerticalSpeed        int32      `json:"verticalSpeed"`        // feet per minute
	LandingVerticalSpeed int32      `json:"landingVerticalSpeed"` // fpm at touchdown
	GForce               int32      `json:"gForce"`               // g-force x1000, divided by the service
	Fuel                 int32      `json:"fuel"`                 // fuel quantity
	Transponder          int32      `json:"transponder"`          // squawk code
	BridgeType           BridgeType `json:"bridgeType"`
	IsOnGround           bool       `json:"isOnGround"`
	IsSlew               bool       `json:"isSlew"`
	IsPaused             bool       `json:"isPaused"`
	Pitch                int32      `json:"pitch"`        // degrees
	Roll                 int32      `json:"roll"`         // degrees
	Time                 int32      `json:"time"`         // ignored, recomputed by the service
	FPS                  int32      `json:"fps"`          // simulator frame rate
	AircraftType         string     `json:"aircraftType"` // unused by the service, required present
}

// Validate checks the record against the companion service's expectations.
// Only the bridge type has a constrained range; every other field is
// full-range by contract.
func (r *TelemetryRecord) Validate() error {
	if !r.BridgeType.Valid() {
		return fmt.Errorf("bridge type out of range: %d", uint8(r.BridgeType))
	}
	return nil
}
