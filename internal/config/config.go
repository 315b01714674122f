// Package config provides YAML-based configuration loading for the game.
package config

// Config contains all user-tunable settings.
type Config struct {
	TickRate int         `yaml:"tick_rate"`
	Audio    AudioConfig `yaml:"audio"`
	Theme    ThemeConfig `yaml:"theme"`
	SSH      SSHConfig   `yaml:"ssh"`
}

// AudioConfig controls sound effect playback.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ThemeConfig sets the display colors by name. Names are resolved by
// core.ColorByName; unknown names fall back to the terminal default.
type ThemeConfig struct {
	PlayerAlive string `yaml:"player_alive"`
	PlayerDead  string `yaml:"player_dead"`
	Entity      string `yaml:"entity"`
}

// SSHConfig holds settings for the serve mode.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}
