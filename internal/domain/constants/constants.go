// Package constants holds shared environment and provider identifiers.
package constants

const (
	// EnvDevelop marks a development deployment.
	EnvDevelop = "develop"
	// EnvProduction marks a production deployment.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal routes message events over local HTTP.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle routes message events through Google Pub/Sub.
	PubSubProviderGoogle = "google"
)
