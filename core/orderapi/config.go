package orderapi

// Config holds configuration for the order-management API.
type Config struct {
	// BaseURL is the regional API server.
	BaseURL string `mapstructure:"base_url" default:"https://eu-ext.linnworks.net"`
	// AuthURL is the application authorization endpoint.
	AuthURL string `mapstructure:"auth_url" default:"https://api.linnworks.net/api/Auth/AuthorizeByApplication"`
	// ApplicationID identifies the registered application.
	ApplicationID string `mapstructure:"application_id" default:""`
	// ApplicationSecret is the application's secret.
	ApplicationSecret string `mapstructure:"application_secret" default:""`
	// Token is the installation token issued to the application.
	Token string `mapstructure:"token" default:""`
	// TimeoutSeconds is the HTTP timeout per request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
