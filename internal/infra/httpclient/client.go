package httpclient

import (
	"net"
	"net/http"
	"time"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
)

type Config struct {
	// Total timeout for one gateway call, including reading the body.
	// A context deadline can still override this.
	Timeout time.Duration

	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration

	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

// DefaultConfig is tuned for a single gateway host.
func DefaultConfig() Config {
	return Config{
		Timeout:             10 * time.Second,
		DialTimeout:         3 * time.Second,
		KeepAlive:           30 * time.Second,
		TLSHandshake:        5 * time.Second,
		ResponseHeader:      10 * time.Second,
		IdleConnTimeout:     60 * time.Second,
		MaxIdleConns:        4,
		MaxIdleConnsPerHost: 2,
	}
}

// ForGateway derives a client config from the workspace gateway settings.
func ForGateway(g domain.GatewayConfig) Config {
	cfg := DefaultConfig()
	if g.Timeout > 0 {
		cfg.Timeout = g.Timeout
		if g.Timeout < cfg.ResponseHeader {
			cfg.ResponseHeader = g.Timeout
		}
	}
	return cfg
}

func New(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
