package gatewayclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/ports"
)

func submission() ports.Submission {
	d := domain.NewDraft()
	d.TentativeTitle = "Soil carbon"
	d.Objectives = []string{"Map stocks"}
	return ports.Submission{Draft: d, Document: domain.ExportDocument(d)}
}

func gatewayConfig(url string) domain.GatewayConfig {
	return domain.GatewayConfig{URL: url, Timeout: 2 * time.Second, IDPath: "$.framework_id"}
}

func TestSubmit_Success(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, SavePath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"framework_id":"framework_20261018_101112_abcdef12","message":"Framework saved successfully"}`))
	}))
	defer srv.Close()

	s := submission()
	id, err := New(gatewayConfig(srv.URL+"/")).Submit(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "framework_20261018_101112_abcdef12", id)

	assert.Equal(t, "Soil carbon", got["tentativeTitle"])
	assert.Equal(t, s.Document, got["document"])
	assert.Equal(t, []any{"Map stocks"}, got["objectives"])
}

func TestSubmit_CustomIDPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":42}}`))
	}))
	defer srv.Close()

	cfg := gatewayConfig(srv.URL)
	cfg.IDPath = "$.data.id"

	id, err := New(cfg).Submit(context.Background(), submission())
	require.NoError(t, err)
	assert.Equal(t, "42", id)
}

func TestSubmit_AcceptedWithoutID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	id, err := New(gatewayConfig(srv.URL)).Submit(context.Background(), submission())
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestSubmit_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"server error", http.StatusInternalServerError, `{"success":false,"error":"disk full"}`, "disk full"},
		{"bad request", http.StatusBadRequest, `not json`, "400"},
		{"explicit rejection", http.StatusOK, `{"success":false,"error":"nope"}`, "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(gatewayConfig(srv.URL)).Submit(context.Background(), submission())
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindDelivery))
			assert.ErrorIs(t, err, domain.ErrDelivery)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, 1, calls)
		})
	}
}

func TestSubmit_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(gatewayConfig(url)).Submit(context.Background(), submission())
	assert.True(t, domain.IsKind(err, domain.KindDelivery), "got %v", err)
}

func TestNew_EmptyURL(t *testing.T) {
	assert.Nil(t, New(domain.GatewayConfig{URL: "  "}))
}
