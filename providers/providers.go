// Package providers registers all known model providers.
// Import this package to make every provider available to
// provider.NewSelector():
//
//	import _ "github.com/inquira/promptkit/providers"
package providers

import (
	_ "github.com/inquira/promptkit/azure"
	_ "github.com/inquira/promptkit/google"
	_ "github.com/inquira/promptkit/mistral"
	_ "github.com/inquira/promptkit/openai"
)
