package socket

import (
	"encoding/json"

	"harvest/internal/errors"
)

// frame is the envelope of every message on the push channel.
type frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func encodeFrame(eventType string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s payload", eventType)
	}

	data, err := json.Marshal(frame{Type: eventType, Payload: raw})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

func decodeFrame(data []byte) (*frame, error) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decode frame")
	}
	if f.Type == "" {
		return nil, errors.New("frame has no type")
	}

	return &f, nil
}
