package config

import "time"

// Options configures the config loader.
type Options struct {
	// YAMLPath is the path to the primary YAML config file.
	YAMLPath string

	// EnvPath is the path to the fallback .env file, used only when YAML is absent.
	EnvPath string

	// EnvPrefix enables environment overrides: with prefix "VRF" the key server.port is
	// overridden by VRF_SERVER_PORT.
	EnvPrefix string

	// Defaults are applied before any file or environment value.
	Defaults map[string]any
}

// ConfigProvider is the interface consumers depend on for reading configuration.
// Implementations must be safe for concurrent use.
type ConfigProvider interface {
	GetString(key string) string
	GetInt(key string) int
	GetUint64(key string) uint64
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	IsSet(key string) bool

	// UnmarshalKey decodes the subtree under key into out (mapstructure tags).
	UnmarshalKey(key string, out any) error

	// WatchChanges starts watching the config file for changes (YAML only).
	WatchChanges()

	// OnChange registers a callback that fires after a successful config reload.
	OnChange(fn func())

	StopWatching()

	// Source returns which config source is active: "yaml" or "env".
	Source() string
}
