package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ServerConfig contains process-level settings read from the environment.
// Command-line flags override these.
type ServerConfig struct {
	Port       uint   `env:"HOPPER_PORT" envDefault:"0"` // 0 disables the spectator transport
	TickRate   int    `env:"HOPPER_TICK_RATE" envDefault:"60"`
	ConfigPath string `env:"HOPPER_CONFIG"`
	LogLevel   string `env:"HOPPER_LOG_LEVEL"`
	LogFormat  string `env:"HOPPER_LOG_FORMAT"`
	SaveApp    string `env:"HOPPER_SAVE_APP" envDefault:"hopper"`
}

// LoadServer parses ServerConfig from the environment.
func LoadServer() (ServerConfig, error) {
	var c ServerConfig
	if err := env.Parse(&c); err != nil {
		return ServerConfig{}, fmt.Errorf("config: parse env: %w", err)
	}
	return c, nil
}
