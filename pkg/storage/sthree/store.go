// Package sthree exposes an S3 bucket, or a bucket of any S3 compatible endpoint, as a storage.Store
package sthree

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/oneconcern/prebuilt/pkg/storage"
	"go.uber.org/zap"
)

// PageSize is the maximum number of keys per listing request
const PageSize = 1000

// DefaultRegion applies when no region is configured
const DefaultRegion = "us-east-1"

// Option is a functor to pass optional parameters to the s3 store
type Option func(*s3FS)

// Bucket to read from
func Bucket(bucket string) Option {
	return func(fs *s3FS) {
		fs.bucket = bucket
	}
}

// AWSConfig replaces the base AWS configuration. Pass it before the other options, which amend it.
func AWSConfig(cfg *aws.Config) Option {
	return func(fs *s3FS) {
		if cfg != nil {
			fs.awsConfig = cfg
		}
	}
}

// StaticCredentials authenticates with an access key pair
func StaticCredentials(accessKeyID, secretAccessKey string) Option {
	return func(fs *s3FS) {
		if accessKeyID != "" {
			fs.awsConfig.Credentials = credentials.NewStaticCredentials(accessKeyID, secretAccessKey, "")
		}
	}
}

// Endpoint overrides the S3 endpoint. Custom endpoints are addressed path-style.
func Endpoint(endpoint string) Option {
	return func(fs *s3FS) {
		if endpoint != "" {
			fs.awsConfig.Endpoint = aws.String(endpoint)
			fs.awsConfig.S3ForcePathStyle = aws.Bool(true)
		}
	}
}

// Region overrides the AWS region
func Region(region string) Option {
	return func(fs *s3FS) {
		if region != "" {
			fs.awsConfig.Region = aws.String(region)
		}
	}
}

// Logger specifies a logger for this store
func Logger(logger *zap.Logger) Option {
	return func(fs *s3FS) {
		if logger != nil {
			fs.l = logger
		}
	}
}

// New read-only store for a bucket
func New(option Option, options ...Option) (storage.Store, error) {
	fs := &s3FS{
		awsConfig: aws.NewConfig().WithRegion(DefaultRegion),
		l:         zap.NewNop(),
	}
	option(fs)
	for _, apply := range options {
		apply(fs)
	}

	sess, err := session.NewSession(fs.awsConfig)
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	fs.s3 = s3.New(sess)
	return fs, nil
}

type s3FS struct {
	bucket    string
	awsConfig *aws.Config
	s3        *s3.S3
	l         *zap.Logger
}

func (s *s3FS) Has(ctx context.Context, key string) (bool, error) {
	_, err := s.s3.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isMissingKey(err) {
			return false, nil
		}
		return false, toSentinelErrors(err)
	}
	return true, nil
}

func (s *s3FS) KeysPrefix(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	eachPage := func(page *s3.ListObjectsV2Output, _ bool) bool {
		for _, obj := range page.Contents {
			key := aws.StringValue(obj.Key)
			if key != "" {
				keys = append(keys, key)
			}
		}
		return true
	}
	params := &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int64(PageSize),
	}

	if err := s.s3.ListObjectsV2PagesWithContext(ctx, params, eachPage); err != nil {
		return nil, toSentinelErrors(err)
	}
	s.l.Debug("listed objects", zap.String("bucket", s.bucket), zap.String("prefix", prefix), zap.Int("count", len(keys)))
	sort.Strings(keys)
	return keys, nil
}

func (s *s3FS) String() string {
	return "s3@" + s.bucket
}
