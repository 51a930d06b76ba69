package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/featherduino/optionsScreener/middleware"
	"github.com/featherduino/optionsScreener/model"
	"github.com/featherduino/optionsScreener/util"

	"github.com/go-resty/resty/v2"
)

// TrueDataClient is the single long-lived handle to the TrueData REST hosts.
// It is constructed once at startup and shared across requests; resty clients
// are safe for concurrent use.
type TrueDataClient struct {
	rest      *resty.Client
	token     string
	expiryURL string
	chainURL  string
}

func NewTrueDataClient(cfg *model.EnvConfig) *TrueDataClient {
	rest := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("Authorization", "Bearer "+cfg.TrueDataToken).
		SetHeader("Accept", "text/csv, application/json")

	rest.OnAfterResponse(middleware.DecompressMiddleware)

	return &TrueDataClient{
		rest:      rest,
		token:     cfg.TrueDataToken,
		expiryURL: cfg.ExpiryURL,
		chainURL:  cfg.OptionChainURL,
	}
}

// GetExpiryList fetches the expiry dates for a symbol. The history host
// answers with JSON on some plans and CSV on others, so the parse is
// deliberately tolerant.
func (c *TrueDataClient) GetExpiryList(ctx context.Context, symbol string) ([]string, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol":   symbol,
			"response": "csv",
			"token":    c.token,
		}).
		Get(c.expiryURL)

	if err != nil {
		return nil, fmt.Errorf("expiry list request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("expiry list returned %d: %s", resp.StatusCode(), snippet(resp.Body()))
	}

	return parseExpiryBody(resp.Body()), nil
}

// GetOptionChainWithGreeks fetches the chain table for a symbol/expiry pair.
// The greeks host expects dd-mm-yyyy expiries; list-host ISO dates are
// normalized before the call.
func (c *TrueDataClient) GetOptionChainWithGreeks(ctx context.Context, symbol, expiry string) ([]model.OptionRow, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol":   symbol,
			"expiry":   util.NormalizeExpiry(expiry),
			"response": "csv",
			"token":    c.token,
		}).
		Get(c.chainURL)

	if err != nil {
		return nil, fmt.Errorf("option chain request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("option chain returned %d: %s", resp.StatusCode(), snippet(resp.Body()))
	}

	rows, err := util.DecodeChainCSV(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("option chain decode error: %w", err)
	}
	return rows, nil
}

// TokenStatus exposes token freshness without leaking the token itself.
func (c *TrueDataClient) TokenStatus() model.TokenStatus {
	return model.TokenStatus{
		Configured: c.token != "",
		Token:      maskToken(c.token),
		ExpiryHost: c.expiryURL,
		ChainHost:  c.chainURL,
	}
}

func parseExpiryBody(body []byte) []string {
	// Object wrapping a list under one of the known keys.
	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(body, &asMap); err == nil {
		for _, key := range []string{"expiries", "data", "result", "expiry"} {
			raw, ok := asMap[key]
			if !ok {
				continue
			}
			var list []string
			if err := json.Unmarshal(raw, &list); err == nil {
				return list
			}
		}
		return []string{}
	}

	// Bare JSON list.
	var list []string
	if err := json.Unmarshal(body, &list); err == nil {
		return list
	}

	// CSV / line-based fallback.
	lines := strings.Split(string(body), "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cleaned = append(cleaned, line)
	}
	if len(cleaned) > 0 && strings.HasPrefix(strings.ToLower(cleaned[0]), "expiry") {
		cleaned = cleaned[1:]
	}

	out := make([]string, 0, len(cleaned))
	for _, line := range cleaned {
		parts := []string{}
		for _, p := range strings.Split(line, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) > 1 {
			out = append(out, parts...)
		} else {
			out = append(out, line)
		}
	}
	return out
}

func maskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-4)
}

func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) <= max {
		return s
	}
	// Cut on a rune boundary so multibyte vendor messages stay valid UTF-8.
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
