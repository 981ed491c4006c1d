package domain

import "time"

// Config represents the thesis workspace configuration loaded from thesis.yaml.
type Config struct {
	Paths   PathsConfig
	Gateway GatewayConfig
	Server  ServerConfig
	Storage StorageConfig
}

type PathsConfig struct {
	DocsDir       string
	FrameworksDir string
	ExportsDir    string
}

// GatewayConfig points the wizard at a persistence gateway.
// An empty URL means exports are only written locally.
type GatewayConfig struct {
	URL     string
	Timeout time.Duration
	// IDPath is a JSONPath expression locating the framework id in the gateway response.
	IDPath string
}

type ServerConfig struct {
	Addr string
}

type StorageBackend string

const (
	StorageFS StorageBackend = "fs"
	StorageS3 StorageBackend = "s3"
)

type StorageConfig struct {
	Backend StorageBackend
	S3      S3Config
}

// S3Config configures an S3-compatible bucket. Credentials are never read from
// thesis.yaml; they come from the environment.
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string
	AccessKey string
	SecretKey string
}

// DefaultConfig provides sane defaults if thesis.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			DocsDir:       "docs",
			FrameworksDir: "frameworks",
			ExportsDir:    "exports",
		},
		Gateway: GatewayConfig{
			Timeout: 10 * time.Second,
			IDPath:  "$.framework_id",
		},
		Server: ServerConfig{
			Addr: ":5000",
		},
		Storage: StorageConfig{
			Backend: StorageFS,
			S3: S3Config{
				Region: "us-east-1",
				Prefix: "frameworks/",
			},
		},
	}
}

// WorkspaceSpec describes where a thesis workspace should be scaffolded.
type WorkspaceSpec struct {
	Root string
}
