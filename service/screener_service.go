package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	localCache "github.com/featherduino/optionsScreener/cache"
	"github.com/featherduino/optionsScreener/client"
	"github.com/featherduino/optionsScreener/customerrors"

	"github.com/patrickmn/go-cache"
)

type ScreenerService interface {
	Fetch(ctx context.Context, path string, params map[string]string) ([]byte, error)
}

type ScreenerServiceImpl struct {
	client *client.ScreenerClient
}

func NewScreenerService(c *client.ScreenerClient) ScreenerService {
	return &ScreenerServiceImpl{client: c}
}

// Fetch proxies a GET to the screener API. Responses are held in a short
// in-process cache keyed by path and params.
func (s *ScreenerServiceImpl) Fetch(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	if !s.client.Configured() {
		return nil, customerrors.ErrScreenerNotConfigured
	}

	key := cacheKey(path, params)
	if cached, found := localCache.ScreenerResponseCache.Get(key); found {
		return cached.([]byte), nil
	}

	body, err := s.client.FetchJSON(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", customerrors.ErrScreenerUpstream, err)
	}

	localCache.ScreenerResponseCache.Set(key, body, cache.DefaultExpiration)
	return body, nil
}

func cacheKey(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v != "" {
			keys = append(keys, k+"="+v)
		}
	}
	sort.Strings(keys)
	return path + "?" + strings.Join(keys, "&")
}
