package serializer

import (
	"bytes"
	"encoding/binary"
	"math"
	"reflect"
	"testing"

	"github.com/gopfly/gopfly/telemetry"
)

// testSerializers is a map of serializer name to factory function
var testSerializers = map[string]func() IRecordSerializer{
	"Wire": NewWireSerializer,
	"JSON": NewJSONSerializer,
}

// testRecords creates a set of test records with different fields filled
func testRecords() []telemetry.TelemetryRecord {
	return []telemetry.TelemetryRecord{
		// Zero record
		{},

		// Cruise snapshot
		{
			Altitude:        36000,
			AGL:             34112,
			Groundspeed:     480,
			IAS:             270,
			HeadingTrue:     272,
			HeadingMagnetic: 268,
			Latitude:        51.4700,
			Longitude:       -0.4543,
			VerticalSpeed:   -100,
			GForce:          1000,
			Fuel:            42000,
			Transponder:     2200,
			BridgeType:      telemetry.BridgeSimConnect,
			Pitch:           2,
			Roll:            -1,
			FPS:             60,
			AircraftType:    "A20N",
		},

		// On the ground, paused, negative altitude (below sea level)
		{
			Altitude:             -1200,
			LandingVerticalSpeed: -180,
			Latitude:             31.5,
			Longitude:            35.4,
			GForce:               1050,
			BridgeType:           telemetry.BridgeFSUIPC,
			IsOnGround:           true,
			IsPaused:             true,
			AircraftType:         "C172",
		},

		// The touchdown example from the companion service docs
		{
			Altitude:     569,
			Latitude:     43.6772222,
			Longitude:    -79.6305556,
			GForce:       1000,
			Fuel:         20000,
			Transponder:  1425,
			BridgeType:   telemetry.BridgeXPlane,
			IsOnGround:   true,
			FPS:          120,
			AircraftType: "B77W",
		},

		// Slew mode with every flag variant exercised
		{
			BridgeType:   telemetry.BridgeInfiniteFlight,
			IsSlew:       true,
			Time:         1234,
			AircraftType: "MD11",
		},
	}
}

// TestSerializerRoundTrip tests that records can be serialized and
// deserialized correctly by every implementation
func TestSerializerRoundTrip(t *testing.T) {
	records := testRecords()

	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			s := factory()

			for i, rec := range records {
				data, err := s.Serialize(&rec)
				if err != nil {
					t.Fatalf("record %d: serialize failed: %v", i, err)
				}

				var decoded telemetry.TelemetryRecord
				if err := s.Deserialize(data, &decoded); err != nil {
					t.Fatalf("record %d: deserialize failed: %v", i, err)
				}

				if !reflect.DeepEqual(rec, decoded) {
					t.Errorf("record %d: round trip mismatch:\ngot  %+v\nwant %+v", i, decoded, rec)
				}
			}
		})
	}
}

// TestWireSerializerDeterministic tests that encoding the same record twice
// yields identical byte sequences
func TestWireSerializerDeterministic(t *testing.T) {
	s := NewWireSerializer()

	for i, rec := range testRecords() {
		a, err := s.Serialize(&rec)
		if err != nil {
			t.Fatalf("record %d: serialize failed: %v", i, err)
		}
		b, err := s.Serialize(&rec)
		if err != nil {
			t.Fatalf("record %d: serialize failed: %v", i, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("record %d: encoding is not deterministic", i)
		}
	}
}

// TestWireSerializerFixedSize tests that every encoded record has the pinned
// wire size, regardless of field values
func TestWireSerializerFixedSize(t *testing.T) {
	s := NewWireSerializer()

	for i, rec := range testRecords() {
		data, err := s.Serialize(&rec)
		if err != nil {
			t.Fatalf("record %d: serialize failed: %v", i, err)
		}
		if len(data) != telemetry.EncodedSize {
			t.Errorf("record %d: encoded length = %d, want %d", i, len(data), telemetry.EncodedSize)
		}
	}
}

// TestWireSerializerFieldOffsets pins the byte offset of every field in the
// encoded output. The companion service decodes positionally, so these
// offsets are an external contract.
func TestWireSerializerFieldOffsets(t *testing.T) {
	rec := telemetry.TelemetryRecord{
		Altitude:             1,
		AGL:                  2,
		Groundspeed:          3,
		IAS:                  4,
		HeadingTrue:          5,
		HeadingMagnetic:      6,
		Latitude:             7.5,
		Longitude:            -8.25,
		VerticalSpeed:        9,
		LandingVerticalSpeed: 10,
		GForce:               11,
		Fuel:                 12,
		Transponder:          13,
		BridgeType:           telemetry.BridgeXPlane,
		IsOnGround:           true,
		IsSlew:               false,
		IsPaused:             true,
		Pitch:                14,
		Roll:                 15,
		Time:                 16,
		FPS:                  17,
		AircraftType:         "B77W",
	}

	data, err := NewWireSerializer().Serialize(&rec)
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}

	int32At := func(off int) int32 {
		return int32(binary.LittleEndian.Uint32(data[off : off+4]))
	}
	float64At := func(off int) float64 {
		return math.Float64frombits(binary.LittleEndian.Uint64(data[off : off+8]))
	}

	int32Fields := []struct {
		name string
		off  int
		want int32
	}{
		{"altitude", 0, 1},
		{"agl", 4, 2},
		{"groundspeed", 8, 3},
		{"ias", 12, 4},
		{"headingTrue", 16, 5},
		{"headingMagnetic", 20, 6},
		{"verticalSpeed", 40, 9},
		{"landingVerticalSpeed", 44, 10},
		{"gForce", 48, 11},
		{"fuel", 52, 12},
		{"transponder", 56, 13},
		{"pitch", 64, 14},
		{"roll", 68, 15},
		{"time", 72, 16},
		{"fps", 76, 17},
	}
	for _, f := range int32Fields {
		if got := int32At(f.off); got != f.want {
			t.Errorf("%s at offset %d = %d, want %d", f.name, f.off, got, f.want)
		}
	}

	if got := float64At(24); got != 7.5 {
		t.Errorf("latitude at offset 24 = %v, want 7.5", got)
	}
	if got := float64At(32); got != -8.25 {
		t.Errorf("longitude at offset 32 = %v, want -8.25", got)
	}

	if data[60] != byte(telemetry.BridgeXPlane) {
		t.Errorf("bridgeType at offset 60 = %d, want %d", data[60], telemetry.BridgeXPlane)
	}

	if got := string(data[80:88]); got != "B77W\x00\x00\x00\x00" {
		t.Errorf("aircraftType at offset 80 = %q", got)
	}
}

// TestWireSerializerBooleanBytes tests the single-byte 0x00/0x01 encoding of
// all three flags at their fixed offsets
func TestWireSerializerBooleanBytes(t *testing.T) {
	s := NewWireSerializer()

	cases := []struct {
		onGround, slew, paused bool
	}{
		{false, false, false},
		{true, false, false},
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	toByte := func(v bool) byte {
		if v {
			return 1
		}
		return 0
	}

	for _, c := range cases {
		rec := telemetry.TelemetryRecord{
			IsOnGround: c.onGround,
			IsSlew:     c.slew,
			IsPaused:   c.paused,
		}
		data, err := s.Serialize(&rec)
		if err != nil {
			t.Fatalf("serialize failed: %v", err)
		}

		if data[61] != toByte(c.onGround) || data[62] != toByte(c.slew) || data[63] != toByte(c.paused) {
			t.Errorf("flags (%v %v %v) encoded as % x", c.onGround, c.slew, c.paused, data[61:64])
		}
	}
}

// TestWireSerializerAircraftTypeTruncation tests that long aircraft type
// codes are truncated to the fixed wire width
func TestWireSerializerAircraftTypeTruncation(t *testing.T) {
	s := NewWireSerializer()

	rec := telemetry.TelemetryRecord{AircraftType: "LONGTYPECODE"}
	data, err := s.Serialize(&rec)
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if len(data) != telemetry.EncodedSize {
		t.Fatalf("encoded length = %d, want %d", len(data), telemetry.EncodedSize)
	}

	var decoded telemetry.TelemetryRecord
	if err := s.Deserialize(data, &decoded); err != nil {
		t.Fatalf("deserialize failed: %v", err)
	}
	if decoded.AircraftType != "LONGTYPE" {
		t.Errorf("aircraft type round trip = %q, want %q", decoded.AircraftType, "LONGTYPE")
	}
}

// TestWireSerializerInvalidBridgeType tests that an out-of-range bridge type
// is rejected at serialization time
func TestWireSerializerInvalidBridgeType(t *testing.T) {
	rec := telemetry.TelemetryRecord{BridgeType: telemetry.BridgeType(9)}
	if _, err := NewWireSerializer().Serialize(&rec); err == nil {
		t.Error("serializer accepted a record with bridge type 9")
	}
}

// TestWireSerializerShortInput tests that truncated payloads are rejected
func TestWireSerializerShortInput(t *testing.T) {
	var rec telemetry.TelemetryRecord
	if err := NewWireSerializer().Deserialize(make([]byte, telemetry.EncodedSize-1), &rec); err == nil {
		t.Error("deserializer accepted a short payload")
	}
}
