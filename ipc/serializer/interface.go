package serializer

import "github.com/gopfly/gopfly/telemetry"

// IRecordSerializer is the interface for all telemetry record serializers
type IRecordSerializer interface {
	// Serialize serializes a TelemetryRecord into a byte array
	// It returns the serialized byte array and an error if any
	Serialize(rec *telemetry.TelemetryRecord) ([]byte, error)
	// Deserialize deserializes a byte array into a TelemetryRecord
	// It takes a byte array and a pointer to a TelemetryRecord as parameters
	// It returns an error if any
	Deserialize(b []byte, rec *telemetry.TelemetryRecord) error
}
