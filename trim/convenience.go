package trim

import (
	"github.com/inquira/promptkit/catalog"
	"github.com/inquira/promptkit/config"
	"github.com/inquira/promptkit/tokens"
)

// ToBudget trims text to the given token budget using the default
// estimating counter and recursive splitter.
func ToBudget(text string, budget int) string {
	return New().Trim(text, budget)
}

// ToDefault trims text to the default context size (config.DefaultContextSize).
func ToDefault(text string) string {
	return New().Trim(text, config.DefaultContextSize)
}

// ForModel trims text to the named model's context window, counting tokens
// with an encoding tuned to that model. Unknown models use the catalog's
// default window and the default encoding.
func ForModel(text, model string) string {
	budget := catalog.Builtin().ContextWindow(model)
	return New().WithCounter(tokens.NewCounterForModel(model)).Trim(text, budget)
}

// ForSettings trims text to the context size carried in settings.
func ForSettings(text string, s config.Settings) string {
	return New().Trim(text, s.EffectiveContextSize())
}
