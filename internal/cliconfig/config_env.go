package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (NERNST_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("unit", os.Getenv("NERNST_UNIT"), &cfg.Unit)
	s.setString("format", os.Getenv("NERNST_FORMAT"), &cfg.Format)
	s.setString("log-level", os.Getenv("NERNST_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setFloatFromString("temperature", os.Getenv("NERNST_TEMPERATURE"), &cfg.Temperature); err != nil {
		return err
	}
	if err := s.setIntFromString("precision", os.Getenv("NERNST_PRECISION"), &cfg.Precision); err != nil {
		return err
	}
	if err := s.setIntFromString("workers", os.Getenv("NERNST_WORKERS"), &cfg.Workers); err != nil {
		return err
	}
	if err := s.setDuration("watch-debounce", os.Getenv("NERNST_WATCH_DEBOUNCE"), &cfg.WatchDebounce); err != nil {
		return err
	}

	return nil
}
