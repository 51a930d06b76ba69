package model

// IndexResponse is the root banner.
type IndexResponse struct {
	Msg string `json:"msg"`
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status string `json:"status"`
}

// NoExpiryResponse is returned (with HTTP 200) when no usable expiry exists
// for the requested symbol.
type NoExpiryResponse struct {
	Error       string `json:"error"`
	Symbol      string `json:"symbol"`
	ExpiryError string `json:"expiry_error,omitempty"`
}

// ChainSummary is the core option-chain payload. ChainError carries the
// suppressed vendor failure on degraded (empty) responses.
type ChainSummary struct {
	Symbol     string      `json:"symbol"`
	Expiry     string      `json:"expiry"`
	TotalRows  int         `json:"total_rows"`
	TopStrikes []OptionRow `json:"top_strikes"`
	ChainError string      `json:"chain_error,omitempty"`
}

// ChainPayload is the full success payload including chart views and the
// OI snapshot history.
type ChainPayload struct {
	ChainSummary
	Charts  ChartViews   `json:"charts"`
	History []OISnapshot `json:"history"`
}

// ScreenerErrorResponse mirrors the upstream proxy error body.
type ScreenerErrorResponse struct {
	Detail string `json:"detail"`
}
