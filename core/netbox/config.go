package netbox

// Config holds configuration for the NetBox API connection.
type Config struct {
	// URL is the base URL of the NetBox instance, e.g. "http://localhost:8000".
	URL string `mapstructure:"url" default:"http://localhost:8000"`
	// Token is the NetBox API token used for authentication.
	Token string `mapstructure:"token" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
