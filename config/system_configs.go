package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/featherduino/optionsScreener/model"

	"github.com/joho/godotenv"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

const (
	defaultBaseURL   = "https://greeks.truedata.in/api"
	defaultExpiryURL = "https://history.truedata.in/getSymbolExpiryList"
)

func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	// TRUEDATA_GREKS_TOKEN is a historical misspelling still present in
	// older deployments; the correctly spelled variable wins.
	token := os.Getenv("TRUEDATA_API_TOKEN")
	if token == "" {
		token = os.Getenv("TRUEDATA_GREKS_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("TRUEDATA_API_TOKEN (or TRUEDATA_GREKS_TOKEN) is required")
	}

	envCfg := &model.EnvConfig{
		Port:            getEnvDefault("PORT", "8000"),
		Environment:     os.Getenv("ENVIRONMENT"),
		TrueDataToken:   token,
		TrueDataBaseURL: strings.TrimRight(getEnvDefault("TRUEDATA_API_BASE_URL", defaultBaseURL), "/"),
		ExpiryURL:       strings.TrimRight(getEnvDefault("TRUEDATA_EXPIRY_URL", defaultExpiryURL), "/"),
		OptionChainURL:  os.Getenv("TRUEDATA_OPTION_CHAIN_URL"),
		ScreenerBaseURL: os.Getenv("OPTION_SCREENER_BASE_URL"),
		CacheEnabled:    parseBool(os.Getenv("CACHE_ENABLED")),
		RedisURL:        os.Getenv("REDIS_URL"),
		RateLimiter:     parseBool(os.Getenv("RATE_LIMITER")),
	}

	if envCfg.OptionChainURL == "" {
		envCfg.OptionChainURL = envCfg.TrueDataBaseURL + "/getOptionChainwithGreeks"
	}

	return &SystemConfigs{Config: envCfg}, nil
}

func getEnvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseBool(val string) bool {
	return strings.EqualFold(strings.TrimSpace(val), "true")
}
