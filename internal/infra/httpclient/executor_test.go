package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
)

func TestExecutorTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	exec := NewExecutor(WithTimeout(20 * time.Millisecond))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := exec.Do(context.Background(), req)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if resp.Duration <= 0 {
		t.Fatalf("expected duration to be set")
	}
}

func TestExecutorReadsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	resp, err := NewExecutor().Do(context.Background(), req)
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if resp.Status != http.StatusOK || string(resp.BodyBytes) != `{"success":true}` {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Headers.Get("Content-Type") != "application/json" {
		t.Fatalf("expected headers cloned")
	}
}

func TestExecutorBodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer server.Close()

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	if _, err := NewExecutor(WithMaxBody(16)).Do(context.Background(), req); err == nil {
		t.Fatalf("expected oversized body error")
	}
}

func TestForGateway(t *testing.T) {
	cfg := ForGateway(domain.GatewayConfig{Timeout: 2 * time.Second})
	if cfg.Timeout != 2*time.Second || cfg.ResponseHeader != 2*time.Second {
		t.Fatalf("unexpected config %+v", cfg)
	}

	if got := ForGateway(domain.GatewayConfig{}); got != DefaultConfig() {
		t.Fatalf("expected defaults for zero timeout, got %+v", got)
	}
}
