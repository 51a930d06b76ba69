package model

// OptionRow is one strike row of the vendor's option chain. Columns vary by
// host and plan, so rows keep the vendor's own field names; numeric cells are
// float64, blank or non-finite cells are nil, everything else stays a string.
type OptionRow map[string]any

// ChainResult is the outcome of a chain fetch. Rows is never nil; Reason is
// empty on success and carries the suppressed vendor error otherwise, so
// callers can tell "no data" from "vendor call failed" without an error ever
// crossing the HTTP boundary.
type ChainResult struct {
	Rows   []OptionRow
	Reason string
}

// TokenStatus reports vendor-token freshness without leaking the token.
type TokenStatus struct {
	Configured bool   `json:"configured"`
	Token      string `json:"token"`
	ExpiryHost string `json:"expiry_host"`
	ChainHost  string `json:"chain_host"`
}

// OISnapshot is one open-interest history entry kept per symbol/expiry.
type OISnapshot struct {
	Timestamp string   `json:"timestamp"`
	CallOI    *float64 `json:"calloi"`
	PutOI     *float64 `json:"putoi"`
	Expiry    string   `json:"expiry"`
}

// Chart-friendly slices of the chain.
type OIBar struct {
	Strike any `json:"strike"`
	CallOI any `json:"calloi"`
	PutOI  any `json:"putoi"`
}

type IVPoint struct {
	Strike any `json:"strike"`
	CallIV any `json:"calliv"`
	PutIV  any `json:"putiv"`
}

type PCRPoint struct {
	Strike any      `json:"strike"`
	PCR    *float64 `json:"pcr"`
}

type ChartViews struct {
	OIBars     []OIBar    `json:"oi_bars"`
	IVSkew     []IVPoint  `json:"iv_skew"`
	PCRHeatmap []PCRPoint `json:"pcr_heatmap"`
}
