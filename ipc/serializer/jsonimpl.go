package serializer

import (
	"encoding/json"

	"github.com/gopfly/gopfly/telemetry"
)

// NewJSONSerializer creates a new serializer using json encoding.
// The companion service does NOT understand this format - it exists for
// diagnostics and for replay files read by the CLI.
func NewJSONSerializer() IRecordSerializer {
	return &jsonSerializerImpl{}
}

// jsonSerializerImpl implements the IRecordSerializer interface using json encoding
type jsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IRecordSerializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) Serialize(rec *telemetry.TelemetryRecord) ([]byte, error) {
	return json.Marshal(rec)
}

func (j jsonSerializerImpl) Deserialize(b []byte, rec *telemetry.TelemetryRecord) error {
	return json.Unmarshal(b, rec)
}
