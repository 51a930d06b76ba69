package model

// EnvConfig holds environment settings for the service.
// @Description Private configuration (not exposed via public endpoints)
type EnvConfig struct {
	Port        string `json:"port"`
	Environment string `json:"environment"`

	// TrueData REST credentials and hosts. Token is resolved from
	// TRUEDATA_API_TOKEN with TRUEDATA_GREKS_TOKEN as a legacy fallback.
	TrueDataToken   string `json:"-"`
	TrueDataBaseURL string `json:"trueDataBaseUrl"`
	ExpiryURL       string `json:"expiryUrl"`
	OptionChainURL  string `json:"optionChainUrl"`

	ScreenerBaseURL string `json:"screenerBaseUrl"`

	CacheEnabled bool   `json:"cacheEnabled"`
	RedisURL     string `json:"-"`

	RateLimiter bool `json:"rateLimiter"`
}
