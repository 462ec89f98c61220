package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Provider is the catalog provider namespace that ownership records are
	// keyed under (steam, gog).
	Provider string `mapstructure:"provider" default:"steam"`
}

const (
	ProviderSteam = "steam"
	ProviderGOG   = "gog"
)

// IsValidProvider checks if the configured provider namespace is known.
func (c Config) IsValidProvider() bool {
	switch c.Provider {
	case ProviderSteam, ProviderGOG:
		return true
	default:
		return false
	}
}
