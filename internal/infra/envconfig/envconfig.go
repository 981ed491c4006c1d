// Package envconfig layers environment variables (and an optional .env file in
// the workspace root) on top of thesis.yaml.
package envconfig

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
)

const (
	EnvGatewayURL     = "THESIS_GATEWAY_URL"
	EnvGatewayTimeout = "THESIS_GATEWAY_TIMEOUT"
	EnvServerAddr     = "THESIS_SERVER_ADDR"
	EnvPort           = "PORT"
	EnvStorageBackend = "THESIS_STORAGE_BACKEND"
	EnvS3Endpoint     = "THESIS_S3_ENDPOINT"
	EnvS3Region       = "THESIS_S3_REGION"
	EnvS3Bucket       = "THESIS_S3_BUCKET"
	EnvS3Prefix       = "THESIS_S3_PREFIX"
	EnvS3AccessKey    = "THESIS_S3_ACCESS_KEY"
	EnvS3SecretKey    = "THESIS_S3_SECRET_KEY"
)

// Lookup returns a variable resolver: the process environment wins, then <root>/.env.
// A missing .env file is not an error.
func Lookup(root string) (func(string) string, error) {
	path := filepath.Join(root, ".env")
	file, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.OpError{
				Op:   "envconfig.read",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		file = map[string]string{}
	}

	return func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return file[key]
	}, nil
}

// Apply overrides cfg with any variables lookup resolves.
func Apply(cfg domain.Config, lookup func(string) string) (domain.Config, error) {
	get := func(k string) string { return strings.TrimSpace(lookup(k)) }

	if v := get(EnvGatewayURL); v != "" {
		cfg.Gateway.URL = strings.TrimRight(v, "/")
	}
	if v := get(EnvGatewayTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, invalid(EnvGatewayTimeout, v)
		}
		cfg.Gateway.Timeout = d
	}

	if v := get(EnvServerAddr); v != "" {
		cfg.Server.Addr = v
	} else if v := get(EnvPort); v != "" {
		cfg.Server.Addr = ":" + v
	}

	if v := get(EnvStorageBackend); v != "" {
		b := domain.StorageBackend(strings.ToLower(v))
		if b != domain.StorageFS && b != domain.StorageS3 {
			return cfg, invalid(EnvStorageBackend, v)
		}
		cfg.Storage.Backend = b
	}

	s3 := &cfg.Storage.S3
	for key, dst := range map[string]*string{
		EnvS3Endpoint:  &s3.Endpoint,
		EnvS3Region:    &s3.Region,
		EnvS3Bucket:    &s3.Bucket,
		EnvS3Prefix:    &s3.Prefix,
		EnvS3AccessKey: &s3.AccessKey,
		EnvS3SecretKey: &s3.SecretKey,
	} {
		if v := get(key); v != "" {
			*dst = v
		}
	}

	return cfg, nil
}

// Load is Lookup followed by Apply.
func Load(root string, cfg domain.Config) (domain.Config, error) {
	lookup, err := Lookup(root)
	if err != nil {
		return cfg, err
	}
	return Apply(cfg, lookup)
}

func invalid(key, value string) error {
	return &domain.OpError{
		Op:   "envconfig.apply",
		Kind: domain.KindInvalidConfig,
		Err:  errors.New(key + ": invalid value " + `"` + value + `"`),
	}
}
