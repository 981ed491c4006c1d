// Package gatewayclient submits exported frameworks to a persistence gateway
// over HTTP.
package gatewayclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/httpclient"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/wire"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/ports"
)

const SavePath = "/api/save-framework"

const defaultIDPath = "$.framework_id"

type Client struct {
	baseURL string
	idPath  string
	exec    *httpclient.Executor
	log     *slog.Logger
}

type Option func(*Client)

func WithExecutor(e *httpclient.Executor) Option {
	return func(c *Client) {
		if e != nil {
			c.exec = e
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns nil when cfg has no URL, which callers treat as "no gateway".
func New(cfg domain.GatewayConfig, opts ...Option) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if base == "" {
		return nil
	}

	idPath := strings.TrimSpace(cfg.IDPath)
	if idPath == "" {
		idPath = defaultIDPath
	}

	c := &Client{
		baseURL: base,
		idPath:  idPath,
		exec: httpclient.NewExecutor(
			httpclient.WithClient(httpclient.New(httpclient.ForGateway(cfg))),
			httpclient.WithTimeout(cfg.Timeout),
		),
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.PersistenceGateway = (*Client)(nil)

// Submit makes exactly one attempt. The returned id may be empty when the
// gateway accepted the document without naming it.
func (c *Client) Submit(ctx context.Context, s ports.Submission) (string, error) {
	url := c.baseURL + SavePath

	body, err := json.Marshal(wire.SaveRequest{Draft: wire.FromDraft(s.Draft), Document: s.Document})
	if err != nil {
		return "", c.fail(url, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", c.fail(url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.exec.Do(ctx, req)
	if err != nil {
		return "", c.fail(url, err)
	}

	var reply wire.SaveResponse
	_ = json.Unmarshal(resp.BodyBytes, &reply)

	if resp.Status < 200 || resp.Status > 299 {
		msg := fmt.Sprintf("gateway responded %d", resp.Status)
		if reply.Error != "" {
			msg += ": " + reply.Error
		}
		return "", c.fail(url, errors.New(msg))
	}
	if reply.Success != nil && !*reply.Success {
		msg := "gateway rejected the framework"
		if reply.Error != "" {
			msg += ": " + reply.Error
		}
		return "", c.fail(url, errors.New(msg))
	}

	id, err := ExtractID(resp.BodyBytes, c.idPath)
	if err != nil {
		c.log.Warn("gateway.id_missing", "url", url, "id_path", c.idPath, "err", err)
		id = ""
	}

	c.log.Info("gateway.saved", "url", url, "status", resp.Status, "framework_id", id, "duration_ms", resp.Duration.Milliseconds())
	return id, nil
}

func (c *Client) fail(url string, err error) error {
	c.log.Warn("gateway.delivery_failed", "url", url, "err", err)
	return &domain.OpError{
		Op:   "gatewayclient.submit",
		Kind: domain.KindDelivery,
		Path: url,
		Err:  fmt.Errorf("%w: %v", domain.ErrDelivery, err),
	}
}
