package beatmap

import (
	"encoding/json"
	"fmt"
)

type field struct {
	name string
	dst  any
}

// decodeFields decodes the named members of a JSON object into their
// destinations in order. Absent members yield ErrMissingField; unknown
// members are ignored.
func decodeFields(data []byte, fields []field) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("expected object, got %s", data)
	}
	for _, f := range fields {
		msg, ok := raw[f.name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
		if err := json.Unmarshal(msg, f.dst); err != nil {
			return fmt.Errorf("decode %s: %w", f.name, err)
		}
	}
	return nil
}
