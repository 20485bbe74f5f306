// Package constants holds shared domain-level constant values.
package constants

// Deployment environment names.
const (
	// EnvDevelop is the local development environment.
	EnvDevelop = "develop"
	// EnvProduction is the live environment.
	EnvProduction = "production"
)

// Pub/Sub provider names accepted in configuration.
const (
	// PubSubProviderLocal publishes over plain HTTP to a local worker.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
