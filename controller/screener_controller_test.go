package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/featherduino/optionsScreener/customerrors"
	"github.com/featherduino/optionsScreener/service"

	"github.com/gin-gonic/gin"
)

type fakeScreener struct {
	body      []byte
	err       error
	gotPath   string
	gotParams map[string]string
}

var _ service.ScreenerService = (*fakeScreener)(nil)

func (f *fakeScreener) Fetch(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	f.gotPath = path
	f.gotParams = params
	return f.body, f.err
}

func serveScreener(t *testing.T, fake *fakeScreener, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewScreenerController(fake).RegisterRoutes(router)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestScreenerOverviewProxied(t *testing.T) {
	fake := &fakeScreener{body: []byte(`{"advances":12}`)}
	w := serveScreener(t, fake, "/optionscreener/overview?date=2026-03-10")

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if fake.gotPath != "/overview" {
		t.Fatalf("path=%q", fake.gotPath)
	}
	if fake.gotParams["date"] != "2026-03-10" {
		t.Fatalf("params=%v", fake.gotParams)
	}
	if w.Body.String() != `{"advances":12}` {
		t.Fatalf("body=%s", w.Body.String())
	}
}

func TestScreenerNotConfiguredIs503(t *testing.T) {
	fake := &fakeScreener{err: customerrors.ErrScreenerNotConfigured}
	w := serveScreener(t, fake, "/optionscreener/heatmap")

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d want 503", w.Code)
	}

	var body map[string]any
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["detail"] == "" {
		t.Fatalf("detail missing: %s", w.Body.String())
	}
}

func TestScreenerUpstreamErrorIs502(t *testing.T) {
	fake := &fakeScreener{err: customerrors.ErrScreenerUpstream}
	w := serveScreener(t, fake, "/optionscreener/quote?symbol=NIFTY")

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status=%d want 502", w.Code)
	}
}

func TestScreenerDateRoutesMapToUpstreamPaths(t *testing.T) {
	for route, upstream := range map[string]string{
		"/optionscreener/overview":    "/overview",
		"/optionscreener/heatmap":     "/heatmap",
		"/optionscreener/top-symbols": "/top-symbols",
	} {
		fake := &fakeScreener{body: []byte(`{}`)}
		w := serveScreener(t, fake, route+"?date=2026-03-10")

		if w.Code != http.StatusOK {
			t.Fatalf("%s status=%d", route, w.Code)
		}
		if fake.gotPath != upstream {
			t.Fatalf("%s proxied to %q want %q", route, fake.gotPath, upstream)
		}
		if fake.gotParams["date"] != "2026-03-10" {
			t.Fatalf("%s dropped the date param: %v", route, fake.gotParams)
		}
	}
}

func TestScreenerScannerForwardsAllParams(t *testing.T) {
	fake := &fakeScreener{body: []byte(`[]`)}
	serveScreener(t, fake, "/optionscreener/optionsScanner?minOI=1000&expiry=26-03-2026")

	if fake.gotPath != "/optionsScanner" {
		t.Fatalf("path=%q", fake.gotPath)
	}
	if fake.gotParams["minOI"] != "1000" || fake.gotParams["expiry"] != "26-03-2026" {
		t.Fatalf("params=%v", fake.gotParams)
	}
}
