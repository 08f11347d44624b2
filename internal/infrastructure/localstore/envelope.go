package localstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Claves de los documentos.
const (
	KeyConsultantProfile = "consultantProfile"
	KeyProposalsHistory  = "proposalsHistory"
)

const envelopeVersion = 1

type envelope struct {
	Version int             `json:"version"`
	SavedAt time.Time       `json:"savedAt"`
	Data    json.RawMessage `json:"data"`
}

func encodeEnvelope(v any, now time.Time) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Version: envelopeVersion, SavedAt: now.UTC(), Data: data})
}

// decodeEnvelope acepta el sobre versionado o el documento sin sobre (formato anterior).
func decodeEnvelope(raw []byte, v any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return err
		}
		if env.Version > envelopeVersion {
			return fmt.Errorf("versión de documento no soportada: %d", env.Version)
		}
		if env.Version > 0 && env.Data != nil {
			return json.Unmarshal(env.Data, v)
		}
	}
	return json.Unmarshal(trimmed, v)
}
