package config

import "time"

// RestyConfig is the fully-resolved HTTP client configuration after
// defaults are applied.
type RestyConfig struct {
	Debug            bool
	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
	Timeout          time.Duration
	TLSVerify        bool
	Proxy            string
}

// DefaultRestyConfig returns the HTTP client defaults.
func DefaultRestyConfig() RestyConfig {
	return RestyConfig{
		Debug:            false,
		RetryCount:       3,
		RetryWaitTime:    1 * time.Second,
		RetryMaxWaitTime: 5 * time.Second,
		Timeout:          15 * time.Second,
		TLSVerify:        true,
	}
}

// SetThen selects value when it is set, otherwise the default.
func SetThen[T comparable](value, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}

// ResolveHTTPClient merges the configured HTTP client settings over
// the defaults.
func ResolveHTTPClient(h *HTTPClient) RestyConfig {
	cfg := DefaultRestyConfig()
	if h == nil {
		return cfg
	}
	cfg.Debug = h.Debug
	cfg.RetryCount = SetThen(h.RetryCount, cfg.RetryCount)
	cfg.RetryWaitTime = SetThen(h.RetryWaitTime.Std(), cfg.RetryWaitTime)
	cfg.RetryMaxWaitTime = SetThen(h.RetryMaxWaitTime.Std(), cfg.RetryMaxWaitTime)
	cfg.Timeout = SetThen(h.Timeout.Std(), cfg.Timeout)
	if h.TLSVerify != nil {
		cfg.TLSVerify = *h.TLSVerify
	}
	cfg.Proxy = h.Proxy
	return cfg
}
