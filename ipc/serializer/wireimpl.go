package serializer

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gopfly/gopfly/telemetry"
)

// NewWireSerializer creates a new serializer producing the positional binary
// format the companion service decodes. The format is an external contract:
// fixed field order, fixed widths, little endian, no tags and no versioning.
func NewWireSerializer() IRecordSerializer {
	return &wireSerializerImpl{}
}

// wireSerializerImpl implements IRecordSerializer using the companion
// service's fixed-layout binary format
type wireSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IRecordSerializer)
// --------------------------------------------------------------------------

func (w wireSerializerImpl) Serialize(rec *telemetry.TelemetryRecord) ([]byte, error) {
	// The schema is fixed and fully populated, so the only way a record can
	// be unserializable is a bridge type outside the service's range
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	result := make([]byte, telemetry.EncodedSize)
	pos := 0

	// Integer block before the coordinates
	pos = putInt32(result, pos, rec.Altitude)
	pos = putInt32(result, pos, rec.AGL)
	pos = putInt32(result, pos, rec.Groundspeed)
	pos = putInt32(result, pos, rec.IAS)
	pos = putInt32(result, pos, rec.HeadingTrue)
	pos = putInt32(result, pos, rec.HeadingMagnetic)

	// Coordinates
	binary.LittleEndian.PutUint64(result[pos:pos+8], math.Float64bits(rec.Latitude))
	pos += 8
	binary.LittleEndian.PutUint64(result[pos:pos+8], math.Float64bits(rec.Longitude))
	pos += 8

	// Integer block after the coordinates
	pos = putInt32(result, pos, rec.VerticalSpeed)
	pos = putInt32(result, pos, rec.LandingVerticalSpeed)
	pos = putInt32(result, pos, rec.GForce)
	pos = putInt32(result, pos, rec.Fuel)
	pos = putInt32(result, pos, rec.Transponder)

	// Bridge type tag and flags, one byte each
	result[pos] = byte(rec.BridgeType)
	pos++
	pos = putBool(result, pos, rec.IsOnGround)
	pos = putBool(result, pos, rec.IsSlew)
	pos = putBool(result, pos, rec.IsPaused)

	// Attitude and timing
	pos = putInt32(result, pos, rec.Pitch)
	pos = putInt32(result, pos, rec.Roll)
	pos = putInt32(result, pos, rec.Time)
	pos = putInt32(result, pos, rec.FPS)

	// Aircraft type, zero padded to its fixed width
	copy(result[pos:pos+telemetry.AircraftTypeLen], rec.AircraftType)

	return result, nil
}

func (w wireSerializerImpl) Deserialize(data []byte, rec *telemetry.TelemetryRecord) error {
	if len(data) < telemetry.EncodedSize {
		return fmt.Errorf("data too short for telemetry record: got %d bytes, need %d", len(data), telemetry.EncodedSize)
	}

	pos := 0

	rec.Altitude, pos = getInt32(data, pos)
	rec.AGL, pos = getInt32(data, pos)
	rec.Groundspeed, pos = getInt32(data, pos)
	rec.IAS, pos = getInt32(data, pos)
	rec.HeadingTrue, pos = getInt32(data, pos)
	rec.HeadingMagnetic, pos = getInt32(data, pos)

	rec.Latitude = math.Float64frombits(binary.LittleEndian.Uint64(data[pos : pos+8]))
	pos += 8
	rec.Longitude = math.Float64frombits(binary.LittleEndian.Uint64(data[pos : pos+8]))
	pos += 8

	rec.VerticalSpeed, pos = getInt32(data, pos)
	rec.LandingVerticalSpeed, pos = getInt32(data, pos)
	rec.GForce, pos = getInt32(data, pos)
	rec.Fuel, pos = getInt32(data, pos)
	rec.Transponder, pos = getInt32(data, pos)

	rec.BridgeType = telemetry.BridgeType(data[pos])
	pos++
	rec.IsOnGround = data[pos] != 0
	pos++
	rec.IsSlew = data[pos] != 0
	pos++
	rec.IsPaused = data[pos] != 0
	pos++

	rec.Pitch, pos = getInt32(data, pos)
	rec.Roll, pos = getInt32(data, pos)
	rec.Time, pos = getInt32(data, pos)
	rec.FPS, pos = getInt32(data, pos)

	// Strip the zero padding from the aircraft type
	raw := data[pos : pos+telemetry.AircraftTypeLen]
	end := len(raw)
	for end > 0 && raw[end-1] == 0 {
		end--
	}
	rec.AircraftType = string(raw[:end])

	return nil
}

// --------------------------------------------------------------------------
// Helper Functions
// --------------------------------------------------------------------------

// putInt32 writes v at pos and returns the next write position
func putInt32(buf []byte, pos int, v int32) int {
	binary.LittleEndian.PutUint32(buf[pos:pos+4], uint32(v))
	return pos + 4
}

// putBool writes v as a single 0x00/0x01 byte and returns the next position
func putBool(buf []byte, pos int, v bool) int {
	if v {
		buf[pos] = 1
	} else {
		buf[pos] = 0
	}
	return pos + 1
}

// getInt32 reads an int32 at pos and returns it with the next read position
func getInt32(buf []byte, pos int) (int32, int) {
	return int32(binary.LittleEndian.Uint32(buf[pos : pos+4])), pos + 4
}
