// Package s3 stores APK artifacts in an S3-compatible bucket
// (Supabase Storage, MinIO, or AWS itself).
package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/appquanta/appquanta-backend/config"
)

const apkContentType = "application/vnd.android.package-archive"

// APKStore uploads installer artifacts and hands back public URLs.
type APKStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewAPKStore(ctx context.Context, cfg *config.StorageConfig) (*APKStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		loadOpts = append(loadOpts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// Supabase Storage and MinIO route buckets by path, not subdomain.
			o.UsePathStyle = true
		}
	})

	publicBase := cfg.PublicBaseURL
	if publicBase == "" {
		publicBase = cfg.Endpoint
	}

	return &APKStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(publicBase, "/"),
	}, nil
}

// Upload stores the artifact under "{appID}.apk" and returns its public URL.
func (s *APKStore) Upload(ctx context.Context, appID string, body io.Reader, size int64) (string, error) {
	key := appID + ".apk"

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(apkContentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload apk: %w", err)
	}

	return s.PublicURL(key), nil
}

// PublicURL returns the publicly resolvable URL for a stored key.
func (s *APKStore) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, key)
}
