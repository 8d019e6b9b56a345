// Package azure implements the provider.Client interface over an Azure
// OpenAI deployment.
//
// azure is an optional provider: it needs both an API key and a resource
// endpoint. When either is missing the slot stays unconfigured and
// selection degrades to openai with a warning.
//
//	import _ "github.com/inquira/promptkit/azure" // register provider
//
// The model name doubles as the deployment name on Azure; configure it
// via AZURE_DEPLOYMENT or the azure.model settings key.
package azure
