// Package settings holds the tool's own runtime settings, read from
// NETCONFIG_* variables and overridable by flags.
package settings

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment prefix of every runtime setting.
const Prefix = "NETCONFIG"

// Settings are the defaults of the persistent CLI flags.
type Settings struct {
	EnvFile   string `envconfig:"ENV_FILE" default:".env"`
	Debug     bool   `envconfig:"DEBUG" default:"false"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// Load processes NETCONFIG_ENV_FILE, NETCONFIG_DEBUG and NETCONFIG_LOG_FORMAT.
func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process(Prefix, &s); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &s, nil
}
