package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file at path (if it exists), applies
// MDPAGES_* environment overrides, and returns normalized Options.
//
// A missing config file is not an error: everything has a default, so a bare
// `mdpages build` in a directory with a ./pages tree works without any config.
func Load(path string) (*Options, error) {
	// .env/.env.local never override the real environment.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	var fc fileConfig
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults only
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(&fc)
	return normalize(&fc)
}

// applyEnvOverrides lets the environment win over the config file, matching
// the precedence users expect from containerized runs.
func applyEnvOverrides(fc *fileConfig) {
	if v := os.Getenv("MDPAGES_PAGES_DIR"); v != "" {
		fc.PagesDir = v
	}
	if v := os.Getenv("MDPAGES_OUTPUT_DIR"); v != "" {
		fc.OutputDir = v
	}
	if v := os.Getenv("MDPAGES_TRAILING_SLASH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			fc.TrailingSlash = &b
		}
	}
}
