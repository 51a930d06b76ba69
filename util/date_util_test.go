package util

import "testing"

func TestParseExpiryLayouts(t *testing.T) {
	for _, raw := range []string{"26-03-2026", "2026-03-26", "26/03/2026", "2026/03/26"} {
		parsed, err := ParseExpiry(raw)
		if err != nil {
			t.Fatalf("ParseExpiry(%q) err=%v", raw, err)
		}
		if parsed.Year() != 2026 || int(parsed.Month()) != 3 || parsed.Day() != 26 {
			t.Fatalf("ParseExpiry(%q)=%v want 2026-03-26", raw, parsed)
		}
	}
}

func TestParseExpiryRejectsGarbage(t *testing.T) {
	if _, err := ParseExpiry("not-a-date"); err == nil {
		t.Fatalf("expected error for unparsable input")
	}
}

func TestNormalizeExpiry(t *testing.T) {
	if got := NormalizeExpiry("2026-03-26"); got != "26-03-2026" {
		t.Fatalf("NormalizeExpiry ISO got %q want 26-03-2026", got)
	}
	if got := NormalizeExpiry("26-03-2026"); got != "26-03-2026" {
		t.Fatalf("NormalizeExpiry passthrough got %q", got)
	}
	if got := NormalizeExpiry(""); got != "" {
		t.Fatalf("NormalizeExpiry empty got %q", got)
	}
}

func TestDecodeChainCSV(t *testing.T) {
	body := []byte("strike,callOI,putOI,callltp,note\n24000,1200,900,15.5,liquid\n24100,,800,x,\n")
	rows, err := DecodeChainCSV(body)
	if err != nil {
		t.Fatalf("DecodeChainCSV err=%v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows=%d want 2", len(rows))
	}

	if rows[0]["strike"] != 24000.0 || rows[0]["callOI"] != 1200.0 {
		t.Fatalf("numeric cells not parsed: %v", rows[0])
	}
	if rows[0]["note"] != "liquid" {
		t.Fatalf("text cell mangled: %v", rows[0]["note"])
	}
	if rows[1]["callOI"] != nil {
		t.Fatalf("blank cell should be nil, got %v", rows[1]["callOI"])
	}
	if rows[1]["callltp"] != "x" {
		t.Fatalf("non-numeric cell should stay string, got %v", rows[1]["callltp"])
	}
}

func TestDecodeChainCSVHeaderOnly(t *testing.T) {
	rows, err := DecodeChainCSV([]byte("strike,callOI\n"))
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rows=%d want 0", len(rows))
	}
}
