package constants

const (
	// ServiceName is used in logs and startup banners.
	ServiceName = "jirabridge"

	// ServiceVersion is the reported application version.
	ServiceVersion = "1.0.0"
)

// Environment names recognized by the config loader and migration manager.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)
