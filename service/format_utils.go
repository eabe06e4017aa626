package service

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/simdoc/domain"
)

// WriteJSON writes indented JSON for the given value to the writer.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("failed to encode JSON", err)
	}
	return nil
}

// WriteYAML writes YAML for the given value to the writer.
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("failed to encode YAML", err)
	}
	return nil
}
