package config

// MergeLocal merges a local .clack.toml config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}
	merged := merge(*global, local.raw)
	return &merged
}
