package credentials

// Config holds configuration for the spreadsheet service account.
type Config struct {
	// ClientEmail is the issuer identity of the service account.
	ClientEmail string `mapstructure:"client_email" default:""`
	// PrivateKey is the PEM-encoded RSA signing key of the service account.
	PrivateKey string `mapstructure:"private_key" default:""`
	// TokenURL is the OAuth2 token endpoint.
	TokenURL string `mapstructure:"token_url" default:"https://oauth2.googleapis.com/token"`
	// Scope is the OAuth2 scope requested for minted tokens.
	Scope string `mapstructure:"scope" default:"https://www.googleapis.com/auth/spreadsheets"`
	// TimeoutSeconds is the HTTP timeout for the token exchange.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
