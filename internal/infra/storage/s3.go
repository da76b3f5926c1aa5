package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"storehub/config"
	"storehub/internal/domain/service"
	"storehub/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const defaultKeyPrefix = "storehub"

// objectAPI is the subset of the S3 client used by the storage.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage keeps images in an S3 compatible bucket. The public ID of an
// image is its object key.
type S3Storage struct {
	client        objectAPI
	bucket        string
	keyPrefix     string
	publicBaseURL string
	now           func() time.Time
}

var _ service.AssetStorage = (*S3Storage)(nil)

// NewS3Storage builds the client from static credentials. A base endpoint
// switches to path-style addressing so MinIO works out of the box.
func NewS3Storage(ctx context.Context, cfg *config.AssetsConfig) (*S3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Storage(client, cfg), nil
}

func newS3Storage(client objectAPI, cfg *config.AssetsConfig) *S3Storage {
	prefix := strings.Trim(cfg.KeyPrefix, "/")
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	publicBaseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if publicBaseURL == "" && cfg.BaseEndpoint != "" {
		publicBaseURL = strings.TrimRight(cfg.BaseEndpoint, "/") + "/" + cfg.Bucket
	}

	return &S3Storage{
		client:        client,
		bucket:        cfg.Bucket,
		keyPrefix:     prefix,
		publicBaseURL: publicBaseURL,
		now:           time.Now,
	}
}

// Upload stores the image under <prefix>/<yyyy>/<mm>/<uuid><ext>.
func (s *S3Storage) Upload(ctx context.Context, body io.Reader, size int64, contentType string) (*service.UploadedAsset, error) {
	key := s.objectKey(contentType)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "put object %s", key)
	}

	return &service.UploadedAsset{PublicID: key, ImageURL: s.publicURL(key)}, nil
}

// Delete removes the object behind ref. S3 does not report missing keys on
// delete, so the object is looked up first.
func (s *S3Storage) Delete(ctx context.Context, ref string) (service.AssetDeleteResult, error) {
	key := strings.TrimPrefix(ref, "/")
	if key == "" {
		return service.AssetNotFound, nil
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
			return service.AssetNotFound, nil
		}

		return service.AssetNotFound, errors.Wrapf(err, "head object %s", key)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return service.AssetNotFound, errors.Wrapf(err, "delete object %s", key)
	}

	return service.AssetDeleted, nil
}

func (s *S3Storage) objectKey(contentType string) string {
	ext := ""
	if mtype := mimetype.Lookup(contentType); mtype != nil {
		ext = mtype.Extension()
	}

	now := s.now().UTC()

	return path.Join(
		s.keyPrefix,
		fmt.Sprintf("%04d", now.Year()),
		fmt.Sprintf("%02d", int(now.Month())),
		uuid.NewString()+ext,
	)
}

func (s *S3Storage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return key
	}

	return s.publicBaseURL + "/" + key
}
