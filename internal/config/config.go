package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the root configuration for apontador, stored in
// ~/.apontador/config.json. The file supports single-line // comments
// for documentation purposes.
type Config struct {
	// BaseURL is the root endpoint of the remote ERP API.
	BaseURL string `json:"base_url"`
	// EquipeID restricts the team listing; 0 means all teams.
	EquipeID int `json:"equipe_id"`
	// PollIntervalSeconds is the delay between retries while a resource
	// has not yet produced a non-empty snapshot.
	PollIntervalSeconds int `json:"poll_interval_seconds"`
	// OrdemFiltro is the server-side filter expression for the order
	// listing (FIELD;OP;VAL1,VAL2,...). It is passed through opaquely,
	// base64-encoded as a path segment.
	OrdemFiltro string `json:"ordem_filtro"`
}

const (
	// DefaultBaseURL is the production ERP endpoint.
	DefaultBaseURL = "http://191.242.244.192:9066"
	// DefaultPollIntervalSeconds matches the refresh cadence the mobile
	// screens used.
	DefaultPollIntervalSeconds = 4
	// DefaultOrdemFiltro keeps only open production orders.
	DefaultOrdemFiltro = "ODP_STATUS;IN;A,P,E"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		BaseURL:             DefaultBaseURL,
		EquipeID:            0,
		PollIntervalSeconds: DefaultPollIntervalSeconds,
		OrdemFiltro:         DefaultOrdemFiltro,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// apontador configuration – ~/.apontador/config.json
//
// All settings are optional; the built-in defaults shown below point at
// the production ERP server. Edit this file to customise behaviour.
{
  // Root endpoint of the ERP API.
  "base_url": "http://191.242.244.192:9066",

  // Team listing restriction. 0 lists every maintenance team.
  "equipe_id": 0,

  // Seconds between polling retries while a listing is still empty.
  "poll_interval_seconds": 4,

  // Server-side filter for the production order listing.
  // The grammar belongs to the server; the value is passed through as-is.
  "ordem_filtro": "ODP_STATUS;IN;A,P,E"
}
`

// BaseDir returns the root data directory (~/.apontador).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".apontador"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads the config file under base, creating it with annotated defaults
// on first run, then applies .env and APONTADOR_* environment overrides.
func Load(base string) (Config, error) {
	path := filepath.Join(base, "config.json")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Aviso: could not create config file %s: %v\n", path, writeErr)
		}
		return applyEnv(base, defaultConfig()), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.PollIntervalSeconds <= 0 {
		cfg.PollIntervalSeconds = DefaultPollIntervalSeconds
	}
	if cfg.OrdemFiltro == "" {
		cfg.OrdemFiltro = DefaultOrdemFiltro
	}

	return applyEnv(base, cfg), nil
}

// applyEnv layers ~/.apontador/.env and process environment variables on
// top of cfg. Environment always wins over the config file.
func applyEnv(base string, cfg Config) Config {
	// Best-effort: a missing .env file is the normal case.
	_ = godotenv.Load(filepath.Join(base, ".env"))

	if v := os.Getenv("APONTADOR_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("APONTADOR_EQUIPE_ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			cfg.EquipeID = id
		}
	}
	if v := os.Getenv("APONTADOR_POLL_INTERVAL"); v != "" {
		if s, err := strconv.Atoi(v); err == nil && s > 0 {
			cfg.PollIntervalSeconds = s
		}
	}
	if v := os.Getenv("APONTADOR_ORDEM_FILTRO"); v != "" {
		cfg.OrdemFiltro = v
	}
	return cfg
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
