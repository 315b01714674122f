package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		TickRate: 50,
		Audio: AudioConfig{
			Enabled: true,
		},
		Theme: ThemeConfig{
			PlayerAlive: "bright-green",
			PlayerDead:  "bright-red",
			Entity:      "white",
		},
		SSH: SSHConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}
