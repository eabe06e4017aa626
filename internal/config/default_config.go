package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const defaultConfigHeader = `# simdoc configuration
#
# Sketch distances are raw normalized Hamming distances: for Jaccard the
# expectation is (1-J)/2, for Cosine it is theta/pi. The radius below is
# compared in that space.

`

// GenerateDefaultConfig renders the default configuration as TOML, ready to
// be written as .simdoc.toml.
func GenerateDefaultConfig() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(defaultConfigHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(DefaultConfig()); err != nil {
		return nil, fmt.Errorf("failed to encode default config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDefaultConfig writes the default configuration to path. It refuses to
// overwrite an existing file.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	data, err := GenerateDefaultConfig()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
