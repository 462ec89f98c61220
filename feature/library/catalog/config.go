package catalog

// Config holds configuration for the catalog provider endpoints.
type Config struct {
	// ApiBaseURL is the base URL of the provider's web API, used for
	// owner-list lookups.
	ApiBaseURL string `mapstructure:"api_base_url" default:"https://api.steampowered.com"`
	// StoreBaseURL is the base URL of the provider's storefront, used for
	// item detail lookups.
	StoreBaseURL string `mapstructure:"store_base_url" default:"https://store.steampowered.com"`
	// ApiKey authenticates owner-list lookups against the web API.
	ApiKey string `mapstructure:"api_key" default:""`
	// RatesURL is the exchange-rate lookup endpoint. The source currency is
	// appended as the final path segment.
	RatesURL string `mapstructure:"rates_url" default:"https://open.er-api.com/v6/latest"`
	// ReferenceCurrency is the currency every stored price quote is
	// normalized to.
	ReferenceCurrency string `mapstructure:"reference_currency" default:"EUR"`
	// CountryCode is passed to detail lookups so the upstream prices in a
	// stable region.
	CountryCode string `mapstructure:"country_code" default:"de"`
}
