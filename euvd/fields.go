package euvd

import (
	"encoding/json"

	"golang.org/x/xerrors"
)

// objectFields decodes raw JSON into a field map, failing when the input is
// not an object. A JSON null decodes into a nil map without error, so it is
// rejected explicitly rather than coerced into an empty record.
func objectFields(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, xerrors.Errorf("expected a JSON object: %w", ErrValidation)
	}
	return fields, nil
}

// requiredID extracts the mandatory identifier and removes it from the field
// map.
func requiredID(fields map[string]json.RawMessage) (string, error) {
	raw, ok := fields["id"]
	if !ok {
		return "", xerrors.Errorf("missing id: %w", ErrValidation)
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil || id == "" {
		return "", xerrors.Errorf("id must be a non-empty string: %w", ErrValidation)
	}
	delete(fields, "id")
	return id, nil
}

// decodeKnown moves every recognized field out of the field map into its
// typed destination, leaving only unknown fields behind.
func decodeKnown(fields map[string]json.RawMessage, known map[string]any) error {
	for key, dst := range known {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return xerrors.Errorf("unexpected type for field %q: %w", key, ErrValidation)
		}
		delete(fields, key)
	}
	return nil
}

// firstPresent returns the value of the first candidate key present in the
// field map.
func firstPresent(fields map[string]json.RawMessage, keys ...string) (json.RawMessage, bool) {
	for _, key := range keys {
		if raw, ok := fields[key]; ok {
			return raw, true
		}
	}
	return nil, false
}

func intField(fields map[string]json.RawMessage, key string, fallback int) (int, error) {
	raw, ok := fields[key]
	if !ok {
		return fallback, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, xerrors.Errorf("field %q must be a number: %w", key, ErrValidation)
	}
	return n, nil
}

func extraOrNil(fields map[string]json.RawMessage) map[string]json.RawMessage {
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func putString(out map[string]any, key string, v *string) {
	if v != nil {
		out[key] = *v
	}
}

func putFloat(out map[string]any, key string, v *float64) {
	if v != nil {
		out[key] = *v
	}
}

func putList(out map[string]any, key string, v []json.RawMessage) {
	if v != nil {
		out[key] = v
	}
}
