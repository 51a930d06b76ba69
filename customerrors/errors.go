package customerrors

import "errors"

var (
	// ErrScreenerNotConfigured means OPTION_SCREENER_BASE_URL is unset.
	ErrScreenerNotConfigured = errors.New("OPTION_SCREENER_BASE_URL is not configured")
	// ErrScreenerUpstream wraps failures from the downstream screener API.
	ErrScreenerUpstream = errors.New("screener request failed")
)
