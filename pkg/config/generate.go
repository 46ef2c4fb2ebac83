package config

import (
	"bytes"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# modsync configuration
# Place this file at $XDG_CONFIG_HOME/modsync/config.toml or point
# MODSYNC_CONFIG at it. Every key can also be set through the environment,
# e.g. MODSYNC_REMOTE_BASE_URL.

`

// Generate renders the effective configuration for opts as TOML
func Generate(opts LoadOptions) ([]byte, error) {
	k, err := newKoanf(opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(k.Raw()); err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}

	return buf.Bytes(), nil
}
