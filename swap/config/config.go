package config

// Config holds limits applied while expanding swap legs.
type Config struct {
	// MaxSchedulePeriods caps the number of accrual periods a schedule may generate.
	// 600 supports up to 50Y with monthly frequency.
	MaxSchedulePeriods int
}

// DefaultConfig provides production-ready default values.
var DefaultConfig = Config{
	MaxSchedulePeriods: 600,
}

// cfg is the active configuration. Defaults to DefaultConfig.
var cfg = DefaultConfig

// SetConfig replaces the active configuration.
// Call it during start-up, before any expansion runs. It is not safe to call
// while other goroutines are expanding legs; the value is read without locking.
func SetConfig(c Config) {
	if c.MaxSchedulePeriods <= 0 {
		c.MaxSchedulePeriods = DefaultConfig.MaxSchedulePeriods
	}
	cfg = c
}

// GetConfig returns the active configuration.
func GetConfig() Config {
	return cfg
}
