package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/coachdesk/dashboard/coaching"
)

// Decode parses a saved or imported blob. Anything but a JSON object is
// rejected with ErrMalformedBlob.
func Decode(raw []byte) (coaching.State, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return coaching.State{}, fmt.Errorf("%w: expected a JSON object", ErrMalformedBlob)
	}

	var state coaching.State
	if err := json.Unmarshal(trimmed, &state); err != nil {
		return coaching.State{}, fmt.Errorf("%w: %v", ErrMalformedBlob, err)
	}
	return state, nil
}

// Encode serializes the state. Pretty output is indented by two spaces, the
// form used for exports.
func Encode(state coaching.State, pretty bool) ([]byte, error) {
	var (
		raw []byte
		err error
	)
	if pretty {
		raw, err = json.MarshalIndent(state, "", "  ")
	} else {
		raw, err = json.Marshal(state)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return raw, nil
}
