package config

// Default configuration values.
const (
	// PathSentinel in executable_search_paths expands to the system PATH.
	PathSentinel = "<PATH>"
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Settings.DependencyInference == nil {
		enabled := true
		cfg.Settings.DependencyInference = &enabled
	}
	if len(cfg.Settings.ExecutableSearchPaths) == 0 {
		cfg.Settings.ExecutableSearchPaths = []string{PathSentinel}
	}
}

// DependencyInference reports the effective dependency-inference setting.
func (c *Config) DependencyInference() bool {
	if c.Settings.DependencyInference == nil {
		return true
	}
	return *c.Settings.DependencyInference
}
