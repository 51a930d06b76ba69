package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/featherduino/optionsScreener/model"
)

func testClient(serverURL string) *TrueDataClient {
	return NewTrueDataClient(&model.EnvConfig{
		TrueDataToken:   "tdtoken123",
		TrueDataBaseURL: serverURL,
		ExpiryURL:       serverURL + "/getSymbolExpiryList",
		OptionChainURL:  serverURL + "/getOptionChainwithGreeks",
	})
}

func TestGetExpiryListJSONObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("symbol") != "NIFTY" {
			t.Fatalf("symbol param missing")
		}
		if r.Header.Get("Authorization") != "Bearer tdtoken123" {
			t.Fatalf("bearer header missing")
		}
		w.Write([]byte(`{"expiries":["26-03-2026","02-04-2026"]}`))
	}))
	defer server.Close()

	expiries, err := testClient(server.URL).GetExpiryList(context.Background(), "NIFTY")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(expiries) != 2 || expiries[0] != "26-03-2026" {
		t.Fatalf("expiries=%v", expiries)
	}
}

func TestGetExpiryListBareJSONList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["26-03-2026"]`))
	}))
	defer server.Close()

	expiries, err := testClient(server.URL).GetExpiryList(context.Background(), "NIFTY")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(expiries) != 1 || expiries[0] != "26-03-2026" {
		t.Fatalf("expiries=%v", expiries)
	}
}

func TestGetExpiryListCSVFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Expiry\n26-03-2026\n02-04-2026, 09-04-2026\n"))
	}))
	defer server.Close()

	expiries, err := testClient(server.URL).GetExpiryList(context.Background(), "NIFTY")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	want := []string{"26-03-2026", "02-04-2026", "09-04-2026"}
	if len(expiries) != len(want) {
		t.Fatalf("expiries=%v want %v", expiries, want)
	}
	for i := range want {
		if expiries[i] != want[i] {
			t.Fatalf("expiries[%d]=%q want %q", i, expiries[i], want[i])
		}
	}
}

func TestGetExpiryListHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid token", http.StatusUnauthorized)
	}))
	defer server.Close()

	if _, err := testClient(server.URL).GetExpiryList(context.Background(), "NIFTY"); err == nil {
		t.Fatalf("expected error on 401")
	}
}

func TestGetOptionChainWithGreeks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// ISO expiries must reach the greeks host as dd-mm-yyyy.
		if got := r.URL.Query().Get("expiry"); got != "26-03-2026" {
			t.Fatalf("expiry=%q want normalized 26-03-2026", got)
		}
		w.Write([]byte("strike,callOI,putOI,delta\n24000,1200,900,0.52\n24100,1100,950,0.47\n"))
	}))
	defer server.Close()

	rows, err := testClient(server.URL).GetOptionChainWithGreeks(context.Background(), "NIFTY", "2026-03-26")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows=%d want 2", len(rows))
	}
	if rows[0]["delta"] != 0.52 {
		t.Fatalf("greeks must pass through, delta=%v", rows[0]["delta"])
	}
}

func TestSnippetKeepsRuneBoundaries(t *testing.T) {
	// 3-byte runes; 200 is not a multiple of 3, so a naive byte cut would
	// split a rune.
	long := strings.Repeat("₹", 100)
	got := snippet([]byte(long))
	if len(got) > 200 {
		t.Fatalf("len=%d want <=200", len(got))
	}
	if !utf8.ValidString(got) {
		t.Fatalf("snippet produced invalid UTF-8: %q", got)
	}

	short := "plain error body"
	if snippet([]byte("  "+short+"  ")) != short {
		t.Fatalf("short bodies must come back trimmed and whole")
	}
}

func TestTokenStatusMasksToken(t *testing.T) {
	status := testClient("http://example.test").TokenStatus()
	if !status.Configured {
		t.Fatalf("expected configured")
	}
	if status.Token != "tdto******" {
		t.Fatalf("token=%q not masked as expected", status.Token)
	}
}
