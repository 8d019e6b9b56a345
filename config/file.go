package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is the conventional settings file name, looked up
// relative to the working directory.
const DefaultConfigFile = "promptkit.toml"

// Load reads settings from a TOML file, then applies environment overrides
// on top. A missing file is not an error: defaults plus environment apply.
//
// File layout:
//
//	context_size = 200000
//
//	[openai]
//	api_key = "sk-..."
//	model = "o3-mini"
//
//	[azure]
//	api_key = "..."
//	endpoint = "https://example.openai.azure.com"
//	model = "gpt-4o"
func Load(path string) (Settings, error) {
	s := Default()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	s.LoadFromEnv()
	return s, nil
}
