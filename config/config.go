package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// DefaultFileName is the conventional on-disk name Load looks for when a
// driver does not pass an explicit path.
const DefaultFileName = ".pqparser.jsonc"

// Config carries optional driver-facing knobs. The zero Config is valid and
// equivalent to Default(): tracing off, no rendering normalization, no
// diagnostic parenthesization.
type Config struct {
	// TraceVerbosity selects the slog level a session's logger is built at
	// ("debug", "info", "warn", "off"). Empty means "off".
	TraceVerbosity string `json:"traceVerbosity,omitempty"`

	// NormalizeRenderSpacing asks typename.Render-based tooling to collapse
	// repeated internal whitespace in a rendered type name before display.
	// The core renderer itself never does this; it is a driver-side
	// cosmetic pass over the returned string.
	NormalizeRenderSpacing bool `json:"normalizeRenderSpacing,omitempty"`

	// ParenthesizeDiagnostics asks a driver's diagnostic formatter to wrap
	// composite type names (unions, function types) in parentheses when
	// they appear nested inside another rendered name. This is purely
	// advisory to callers outside this module; typename.Render itself never
	// parenthesizes.
	ParenthesizeDiagnostics bool `json:"parenthesizeDiagnostics,omitempty"`
}

// Default returns the zero Config.
func Default() *Config {
	return &Config{}
}

// Load reads path, strips jsonc comments and trailing commas via
// tidwall/jsonc, and decodes the result with the standard library's strict
// JSON decoder.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := &Config{}
	if err := json.Unmarshal(jsonc.ToJSON(raw), cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault looks for DefaultFileName in dir and loads it. If the file
// does not exist, LoadDefault returns Default() rather than an error: the
// ambient configuration file is always optional.
func LoadDefault(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}
	return Load(path)
}
