package presets

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Load decodes an embedded JSON file into T. Unknown fields are rejected so a
// misspelt key in presets.json or themes.json fails loudly instead of
// silently zeroing a setting.
func Load[T any](filename string) (T, error) {
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("reading embedded %s: %w", filename, err)
	}
	return decode[T](filename, content)
}

func decode[T any](filename string, content []byte) (T, error) {
	var out T
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("decoding %s: %w", filename, err)
	}
	if dec.More() {
		return out, fmt.Errorf("decoding %s: trailing data after top-level value", filename)
	}
	return out, nil
}

// MustLoad is Load for files that ship with the binary; failure is a build
// defect.
func MustLoad[T any](filename string) T {
	out, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return out
}
