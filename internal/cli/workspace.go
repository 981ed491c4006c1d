package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/envconfig"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/gatewayclient"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/mdstore"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/s3store"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/workspacefinder"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/ports"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/usecase"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	// found is false when running outside a workspace on defaults.
	found bool
}

// loadWorkspace resolves the workspace and layers env variables over thesis.yaml.
// With required=false a missing workspace falls back to the working directory.
func loadWorkspace(workspaceFlag string, required bool) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	found := err == nil
	if err != nil {
		if required {
			return nil, err
		}
		if root, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := domain.DefaultConfig()
	if found {
		if cfg, err = workspacefinder.LoadConfig(root); err != nil {
			return nil, err
		}
	}

	cfg, err = envconfig.Load(root, cfg)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{root: root, cfg: cfg, found: found}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `thesis init`): %w", wd, err)
	}
	return root, nil
}

func (ws *workspaceCtx) files() *mdstore.Store {
	return mdstore.New(ws.root, ws.cfg.Paths, mdstore.WithIndex(true))
}

// exporter wires the gateway (when configured) in front of the local exports dir.
func (ws *workspaceCtx) exporter(log *slog.Logger, withGateway bool) *usecase.ExportFramework {
	opts := []usecase.ExportOption{usecase.WithExportLogger(log)}
	if withGateway {
		// A nil *Client must not become a non-nil interface.
		if gw := gatewayclient.New(ws.cfg.Gateway, gatewayclient.WithLogger(log)); gw != nil {
			opts = append(opts, usecase.WithGateway(gw))
		}
	}
	return usecase.NewExportFramework(ws.files(), opts...)
}

// store returns the configured framework store and its backend name.
func (ws *workspaceCtx) store(ctx context.Context) (ports.FrameworkStore, string, error) {
	switch ws.cfg.Storage.Backend {
	case domain.StorageS3:
		client, err := s3store.NewClient(ctx, ws.cfg.Storage.S3)
		if err != nil {
			return nil, "", err
		}
		st, err := s3store.New(client, ws.cfg.Storage.S3)
		if err != nil {
			return nil, "", err
		}
		return st, "s3://" + st.Bucket(), nil
	default:
		return ws.files(), "fs", nil
	}
}
