// Copyright © 2018 One Concern

// Package gcs exposes a Google Cloud Storage bucket as a storage.Store
package gcs

import (
	"context"
	"sort"

	gcsStorage "cloud.google.com/go/storage"
	"github.com/oneconcern/prebuilt/pkg/errors"
	"github.com/oneconcern/prebuilt/pkg/storage"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type gcs struct {
	client     *gcsStorage.Client
	bucket     string
	clientOpts []option.ClientOption
	l          *zap.Logger
}

// New read-only store for a bucket
func New(ctx context.Context, bucket string, opts ...Option) (storage.Store, error) {
	googleStore := &gcs{
		bucket:     bucket,
		clientOpts: []option.ClientOption{option.WithScopes(gcsStorage.ScopeReadOnly)},
		l:          zap.NewNop(),
	}
	for _, apply := range opts {
		apply(googleStore)
	}

	var err error
	googleStore.client, err = gcsStorage.NewClient(ctx, googleStore.clientOpts...)
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	return googleStore, nil
}

func (g *gcs) String() string {
	return "gcs://" + g.bucket
}

func (g *gcs) Has(ctx context.Context, objectName string) (bool, error) {
	_, err := g.client.Bucket(g.bucket).Object(objectName).Attrs(ctx)
	if err != nil {
		if errors.Is(err, gcsStorage.ErrObjectNotExist) {
			return false, nil
		}
		return false, toSentinelErrors(err)
	}
	return true, nil
}

func (g *gcs) KeysPrefix(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	objectsIterator := g.client.Bucket(g.bucket).Objects(ctx, &gcsStorage.Query{Prefix: prefix})
	for {
		attrs, err := objectsIterator.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, toSentinelErrors(err)
		}
		keys = append(keys, attrs.Name)
	}
	g.l.Debug("listed objects", zap.String("bucket", g.bucket), zap.String("prefix", prefix), zap.Int("count", len(keys)))
	sort.Strings(keys)
	return keys, nil
}
