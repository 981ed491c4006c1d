package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
)

// LoadConfig loads thesis.yaml (or thesis.yml) from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := ConfigPath(root)
	if path == "" {
		path = filepath.Join(root, ConfigFileName)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := apply(&cfg, y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

// apply lays parsed values on top of defaults; empty values keep the default.
func apply(cfg *domain.Config, y yamlConfig) error {
	t := y.Thesis

	setString(&cfg.Paths.DocsDir, t.Paths.DocsDir)
	setString(&cfg.Paths.FrameworksDir, t.Paths.FrameworksDir)
	setString(&cfg.Paths.ExportsDir, t.Paths.ExportsDir)

	setString(&cfg.Gateway.URL, strings.TrimRight(t.Gateway.URL, "/"))
	setString(&cfg.Gateway.IDPath, t.Gateway.IDPath)
	if t.Gateway.Timeout != "" {
		d, err := time.ParseDuration(t.Gateway.Timeout)
		if err != nil {
			return fmt.Errorf("gateway.timeout: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("gateway.timeout: must be positive, got %s", d)
		}
		cfg.Gateway.Timeout = d
	}

	setString(&cfg.Server.Addr, t.Server.Addr)

	if t.Storage.Backend != "" {
		switch b := domain.StorageBackend(strings.ToLower(t.Storage.Backend)); b {
		case domain.StorageFS, domain.StorageS3:
			cfg.Storage.Backend = b
		default:
			return fmt.Errorf("storage.backend: unsupported %q (expected fs|s3)", t.Storage.Backend)
		}
	}
	setString(&cfg.Storage.S3.Endpoint, t.Storage.S3.Endpoint)
	setString(&cfg.Storage.S3.Region, t.Storage.S3.Region)
	setString(&cfg.Storage.S3.Bucket, t.Storage.S3.Bucket)
	setString(&cfg.Storage.S3.Prefix, t.Storage.S3.Prefix)

	return nil
}

func setString(dst *string, v string) {
	if strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

type yamlConfig struct {
	Thesis struct {
		Paths struct {
			DocsDir       string `yaml:"docs_dir"`
			FrameworksDir string `yaml:"frameworks_dir"`
			ExportsDir    string `yaml:"exports_dir"`
		} `yaml:"paths"`

		Gateway struct {
			URL     string `yaml:"url"`
			Timeout string `yaml:"timeout"`
			IDPath  string `yaml:"id_path"`
		} `yaml:"gateway"`

		Server struct {
			Addr string `yaml:"addr"`
		} `yaml:"server"`

		Storage struct {
			Backend string `yaml:"backend"`
			S3      struct {
				Endpoint string `yaml:"endpoint"`
				Region   string `yaml:"region"`
				Bucket   string `yaml:"bucket"`
				Prefix   string `yaml:"prefix"`
			} `yaml:"s3"`
		} `yaml:"storage"`
	} `yaml:"thesis"`
}
