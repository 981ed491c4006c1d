// Package s3store keeps frameworks in S3-compatible object storage.
package s3store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/wire"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/ports"
)

// API is the subset of *s3.Client the store uses.
type API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, opts ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type Store struct {
	api    API
	bucket string
	prefix string
}

var _ ports.FrameworkStore = (*Store)(nil)

// NewClient builds an S3 client for cfg. An endpoint selects path-style
// addressing, which MinIO and most self-hosted stores expect.
func NewClient(ctx context.Context, cfg domain.S3Config) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, &domain.OpError{Op: "s3store.config", Kind: domain.KindInvalidConfig, Err: fmt.Errorf("failed to load AWS config: %w", err)}
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func New(api API, cfg domain.S3Config) (*Store, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, &domain.OpError{Op: "s3store.new", Kind: domain.KindInvalidConfig, Err: errors.New("s3 bucket is required")}
	}
	prefix := strings.TrimLeft(cfg.Prefix, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Store{api: api, bucket: cfg.Bucket, prefix: prefix}, nil
}

func (s *Store) Bucket() string { return s.bucket }

func (s *Store) key(id, ext string) string { return s.prefix + id + ext }

func (s *Store) Save(ctx context.Context, f domain.SavedFramework) error {
	if !domain.ValidFrameworkID(f.ID) {
		return &domain.OpError{Op: "s3store.save", Kind: domain.KindInvalidConfig, Path: f.ID, Err: errors.New("malformed framework id")}
	}

	rec := wire.FromSaved(f)
	rec.Document = ""
	b, err := json.Marshal(rec)
	if err != nil {
		return &domain.OpError{Op: "s3store.marshal", Kind: domain.KindExecution, Path: f.ID, Err: err}
	}

	// Document first so a listed record always has one.
	if err := s.put(ctx, s.key(f.ID, ".md"), []byte(f.Document), "text/markdown; charset=utf-8"); err != nil {
		return err
	}
	return s.put(ctx, s.key(f.ID, ".json"), b, "application/json")
}

func (s *Store) Get(ctx context.Context, id string) (domain.SavedFramework, error) {
	if !domain.ValidFrameworkID(id) {
		return domain.SavedFramework{}, notFound(id)
	}

	b, err := s.get(ctx, s.key(id, ".json"))
	if err != nil {
		if isNotFound(err) {
			return domain.SavedFramework{}, notFound(id)
		}
		return domain.SavedFramework{}, s.opErr("s3store.get", id, err)
	}

	var rec wire.FrameworkRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.SavedFramework{}, s.opErr("s3store.parse", id, err)
	}

	doc, err := s.get(ctx, s.key(id, ".md"))
	if err != nil && !isNotFound(err) {
		return domain.SavedFramework{}, s.opErr("s3store.get", id, err)
	}
	rec.Document = string(doc)

	return rec.ToSaved(), nil
}

// List pages through every record under the prefix, newest first.
func (s *Store) List(ctx context.Context) ([]domain.FrameworkRef, error) {
	p := s3.NewListObjectsV2Paginator(s.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})

	out := []domain.FrameworkRef{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			if isNotFound(err) {
				return out, nil
			}
			return nil, s.opErr("s3store.list", s.prefix, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			id, ok := strings.CutSuffix(strings.TrimPrefix(key, s.prefix), ".json")
			if !ok || !domain.ValidFrameworkID(id) {
				continue
			}
			b, err := s.get(ctx, key)
			if err != nil {
				continue
			}
			var ref wire.FrameworkRef
			if err := json.Unmarshal(b, &ref); err != nil {
				continue
			}
			out = append(out, ref.ToRef())
		}
	}

	domain.SortNewestFirst(out)
	return out, nil
}

func (s *Store) put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return s.opErr("s3store.put", key, err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	res, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	return io.ReadAll(res.Body)
}

func (s *Store) opErr(op, path string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindExecution, Path: s.bucket + "/" + path, Err: err}
}

func notFound(id string) error {
	return &domain.OpError{Op: "s3store.get", Kind: domain.KindNotFound, Path: id, Err: domain.ErrNotFound}
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return true
	}

	// S3-compatible services do not always return the typed errors.
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket", "404":
			return true
		}
	}
	return false
}
