package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ScreenerClient proxies the external option-screener API. A zero base URL
// yields an unconfigured client; callers must check Configured first.
type ScreenerClient struct {
	rest       *resty.Client
	configured bool
}

func NewScreenerClient(baseURL string) *ScreenerClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return &ScreenerClient{}
	}

	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(20 * time.Second).
		SetHeader("Accept", "application/json")

	return &ScreenerClient{rest: rest, configured: true}
}

func (c *ScreenerClient) Configured() bool {
	return c.configured
}

// FetchJSON performs a GET against the screener and returns the raw JSON
// body. Empty-valued params are dropped before the call.
func (c *ScreenerClient) FetchJSON(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	req := c.rest.R().SetContext(ctx)
	for k, v := range params {
		if v != "" {
			req.SetQueryParam(k, v)
		}
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("screener returned %d", resp.StatusCode())
	}
	return resp.Body(), nil
}
