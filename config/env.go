package config

import (
	"os"
	"strconv"
)

// LoadFromEnv populates settings from environment variables. Set variables
// take precedence over existing values; unset variables leave fields alone.
//
// Supported variables:
//   - OPENAI_API_KEY (legacy fallback: OPENAI_KEY), OPENAI_ENDPOINT, OPENAI_MODEL
//   - GOOGLE_API_KEY (fallback: GEMINI_API_KEY), GOOGLE_MODEL
//   - AZURE_API_KEY, AZURE_ENDPOINT, AZURE_DEPLOYMENT, AZURE_API_VERSION
//   - MISTRAL_API_KEY, MISTRAL_ENDPOINT, MISTRAL_MODEL
//   - PROMPTKIT_CONTEXT_SIZE: default trim budget; values that are not
//     positive integers are ignored
func (s *Settings) LoadFromEnv() {
	if v := getenv("OPENAI_API_KEY", "OPENAI_KEY"); v != "" {
		s.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_ENDPOINT"); v != "" {
		s.OpenAI.Endpoint = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		s.OpenAI.Model = v
	}

	if v := getenv("GOOGLE_API_KEY", "GEMINI_API_KEY"); v != "" {
		s.Google.APIKey = v
	}
	if v := os.Getenv("GOOGLE_MODEL"); v != "" {
		s.Google.Model = v
	}

	if v := os.Getenv("AZURE_API_KEY"); v != "" {
		s.Azure.APIKey = v
	}
	if v := os.Getenv("AZURE_ENDPOINT"); v != "" {
		s.Azure.Endpoint = v
	}
	if v := os.Getenv("AZURE_DEPLOYMENT"); v != "" {
		s.Azure.Model = v
	}
	if v := os.Getenv("AZURE_API_VERSION"); v != "" {
		s.Azure.APIVersion = v
	}

	if v := os.Getenv("MISTRAL_API_KEY"); v != "" {
		s.Mistral.APIKey = v
	}
	if v := os.Getenv("MISTRAL_ENDPOINT"); v != "" {
		s.Mistral.Endpoint = v
	}
	if v := os.Getenv("MISTRAL_MODEL"); v != "" {
		s.Mistral.Model = v
	}

	if v := os.Getenv("PROMPTKIT_CONTEXT_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.ContextSize = n
		}
	}
}

// FromEnv creates Settings from environment variables with defaults.
// Read it once at process start and pass the value down; nothing in this
// package re-reads the environment afterwards.
func FromEnv() Settings {
	s := Default()
	s.LoadFromEnv()
	return s
}

// getenv returns the first non-empty value among the named variables.
func getenv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
