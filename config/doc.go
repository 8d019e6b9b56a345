// Package config holds provider credentials and trim budgets, loaded once
// at process start and passed down explicitly. There are no package-level
// singletons; every component that needs configuration takes a Settings
// value.
//
// # Loading
//
// From the environment only:
//
//	cfg := config.FromEnv()
//
// From a TOML file with environment overrides on top:
//
//	cfg, err := config.Load("promptkit.toml")
//
// Both forms fall back to DefaultContextSize (128,000 tokens) when no
// context size is configured or the configured value is not a positive
// integer.
//
// # Immutability
//
// Settings is a plain value. The With* methods return modified copies, so a
// loaded configuration can be shared freely across goroutines:
//
//	base := config.FromEnv()
//	small := base.WithContextSize(8_000)
package config
