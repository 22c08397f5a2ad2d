// Package httpclient configures the resty client used to fetch live
// pages for DOM snapshot scans. File-based scans never touch it.
package httpclient

import (
	"crypto/tls"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/a11yscan/a11yscan/pkg/shared/config"
)

// HclogAdapter forwards resty's log output to an hclog.Logger.
type HclogAdapter struct {
	logger hclog.Logger
}

// NewHclogAdapter wraps the logger in resty's Logger interface.
func NewHclogAdapter(logger hclog.Logger) resty.Logger {
	return &HclogAdapter{logger: logger}
}

// Errorf logs a message at error level.
func (a *HclogAdapter) Errorf(format string, v ...interface{}) {
	a.logger.Error(fmt.Sprintf(format, v...))
}

// Warnf logs a message at warning level.
func (a *HclogAdapter) Warnf(format string, v ...interface{}) {
	a.logger.Warn(fmt.Sprintf(format, v...))
}

// Debugf logs a message at debug level.
func (a *HclogAdapter) Debugf(format string, v ...interface{}) {
	a.logger.Debug(fmt.Sprintf(format, v...))
}

// New initializes a resty client from the resolved configuration.
func New(logger hclog.Logger, cfg *config.Config) *resty.Client {
	client := resty.New()
	if logger != nil {
		client.SetLogger(NewHclogAdapter(logger))
	}

	var httpCfg *config.HTTPClient
	if cfg != nil {
		httpCfg = &cfg.HTTPClient
	}
	resolved := config.ResolveHTTPClient(httpCfg)

	client.
		SetDebug(resolved.Debug).
		SetRetryCount(resolved.RetryCount).
		SetRetryWaitTime(resolved.RetryWaitTime).
		SetRetryMaxWaitTime(resolved.RetryMaxWaitTime).
		SetTimeout(resolved.Timeout).
		SetTLSClientConfig(&tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: !resolved.TLSVerify,
		})
	if resolved.Proxy != "" {
		client.SetProxy(resolved.Proxy)
	}
	return client
}
