package config

import "testing"

func clearVendorEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TRUEDATA_API_TOKEN", "TRUEDATA_GREKS_TOKEN", "TRUEDATA_API_BASE_URL",
		"TRUEDATA_EXPIRY_URL", "TRUEDATA_OPTION_CHAIN_URL", "PORT",
		"CACHE_ENABLED", "REDIS_URL", "RATE_LIMITER", "ENVIRONMENT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigsRequiresToken(t *testing.T) {
	clearVendorEnv(t)

	if _, err := LoadConfigs(); err == nil {
		t.Fatalf("expected error without any token variable")
	}
}

func TestLoadConfigsLegacyTokenAlias(t *testing.T) {
	clearVendorEnv(t)
	t.Setenv("TRUEDATA_GREKS_TOKEN", "legacy")

	cfg, err := LoadConfigs()
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if cfg.Config.TrueDataToken != "legacy" {
		t.Fatalf("token=%q want legacy alias honoured", cfg.Config.TrueDataToken)
	}
}

func TestLoadConfigsCorrectSpellingWins(t *testing.T) {
	clearVendorEnv(t)
	t.Setenv("TRUEDATA_GREKS_TOKEN", "legacy")
	t.Setenv("TRUEDATA_API_TOKEN", "current")

	cfg, err := LoadConfigs()
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if cfg.Config.TrueDataToken != "current" {
		t.Fatalf("token=%q want correctly spelled variable to win", cfg.Config.TrueDataToken)
	}
}

func TestLoadConfigsDefaults(t *testing.T) {
	clearVendorEnv(t)
	t.Setenv("TRUEDATA_API_TOKEN", "tok")

	cfg, err := LoadConfigs()
	if err != nil {
		t.Fatalf("err=%v", err)
	}

	c := cfg.Config
	if c.Port != "8000" {
		t.Fatalf("port=%q want 8000", c.Port)
	}
	if c.TrueDataBaseURL != "https://greeks.truedata.in/api" {
		t.Fatalf("base=%q", c.TrueDataBaseURL)
	}
	if c.ExpiryURL != "https://history.truedata.in/getSymbolExpiryList" {
		t.Fatalf("expiry=%q", c.ExpiryURL)
	}
	if c.OptionChainURL != "https://greeks.truedata.in/api/getOptionChainwithGreeks" {
		t.Fatalf("chain=%q", c.OptionChainURL)
	}
	if c.CacheEnabled || c.RateLimiter {
		t.Fatalf("cache/rate limiter must default off")
	}
}

func TestLoadConfigsChainURLOverride(t *testing.T) {
	clearVendorEnv(t)
	t.Setenv("TRUEDATA_API_TOKEN", "tok")
	t.Setenv("TRUEDATA_OPTION_CHAIN_URL", "https://alt.example.com/chain")

	cfg, err := LoadConfigs()
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if cfg.Config.OptionChainURL != "https://alt.example.com/chain" {
		t.Fatalf("chain=%q", cfg.Config.OptionChainURL)
	}
}

func TestLoadConfigsCacheEnabledParsing(t *testing.T) {
	clearVendorEnv(t)
	t.Setenv("TRUEDATA_API_TOKEN", "tok")
	t.Setenv("CACHE_ENABLED", "True")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := LoadConfigs()
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if !cfg.Config.CacheEnabled {
		t.Fatalf("CACHE_ENABLED=True should parse as enabled")
	}
}
