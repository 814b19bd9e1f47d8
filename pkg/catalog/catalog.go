// Package catalog lists the packages published under a version index storage root.
package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/oneconcern/prebuilt/pkg/config"
	"github.com/oneconcern/prebuilt/pkg/errors"
	"github.com/oneconcern/prebuilt/pkg/model"
	"github.com/oneconcern/prebuilt/pkg/storage"
	"github.com/oneconcern/prebuilt/pkg/storage/gcs"
	"github.com/oneconcern/prebuilt/pkg/storage/localfs"
	"github.com/oneconcern/prebuilt/pkg/storage/sthree"
	"go.uber.org/zap"
)

var (
	// ErrPackageNotFound indicates that no version index is published for a package
	ErrPackageNotFound = errors.New("package not found")

	// ErrOpen indicates that the storage backing the catalog could not be opened
	ErrOpen = errors.New("cannot open version index storage")
)

// Option is a functor to pass optional parameters to the catalog
type Option func(*Catalog)

// Logger specifies a logger for the catalog and its storage
func Logger(logger *zap.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.l = logger
		}
	}
}

// Catalog of the version indexes found under a storage root
type Catalog struct {
	store  storage.Store
	prefix string
	l      *zap.Logger
}

// New catalog for the version indexes stored under prefix in store
func New(store storage.Store, prefix string, opts ...Option) *Catalog {
	c := &Catalog{
		store:  store,
		prefix: strings.Trim(prefix, "/"),
		l:      zap.NewNop(),
	}
	for _, apply := range opts {
		apply(c)
	}
	return c
}

// Location splits a storage root into a bucket and a key prefix.
// Local roots have no bucket: the prefix is the folder.
func Location(root model.VersionIndexStorageURI) (bucket, prefix string) {
	s := root.String()
	switch root.Protocol() {
	case model.ProtocolGoogle:
		s = strings.TrimPrefix(s, model.GoogleScheme)
	case model.ProtocolS3:
		s = strings.TrimPrefix(s, model.S3Scheme)
	default:
		return "", s
	}
	parts := strings.SplitN(s, "/", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Trim(parts[1], "/")
}

// Open a catalog on the storage designated by root, authenticated with the application configuration
func Open(ctx context.Context, app config.Application, root model.VersionIndexStorageURI, opts ...Option) (*Catalog, error) {
	c := New(nil, "", opts...)
	bucket, prefix := Location(root)

	var (
		store storage.Store
		err   error
	)
	switch root.Protocol() {
	case model.ProtocolGoogle:
		store, err = gcs.New(ctx, bucket, gcs.CredentialsFile(app.CredentialsFile), gcs.Logger(c.l))
	case model.ProtocolS3:
		store, err = sthree.New(sthree.Bucket(bucket),
			sthree.StaticCredentials(app.ClientID, app.ClientSecret),
			sthree.Endpoint(app.EndpointOverride),
			sthree.Region(app.RegionOverride),
			sthree.Logger(c.l),
		)
	default:
		store, prefix = localfs.NewAt(prefix), ""
	}
	if err != nil {
		return nil, ErrOpen.Wrap(err)
	}
	c.store = store
	c.prefix = prefix
	c.l.Debug("opened version index storage", zap.Stringer("store", store), zap.String("prefix", prefix))
	return c, nil
}

// String representation of the catalog storage
func (c *Catalog) String() string {
	if c.prefix == "" {
		return c.store.String()
	}
	return c.store.String() + "/" + c.prefix
}

// Packages published in the catalog, sorted by name
func (c *Catalog) Packages(ctx context.Context) ([]string, error) {
	keys, err := c.store.KeysPrefix(ctx, storage.JoinKey(c.prefix, model.VersionIndexPrefix))
	if err != nil {
		return nil, err
	}
	packages := make([]string, 0, len(keys))
	for _, key := range keys {
		name, ok := model.PackageNameFromKey(c.relative(key))
		if !ok {
			continue
		}
		packages = append(packages, name)
	}
	sort.Strings(packages)
	return packages, nil
}

// Has tells if a version index is published for a package
func (c *Catalog) Has(ctx context.Context, packageName string) (bool, error) {
	return c.store.Has(ctx, storage.JoinKey(c.prefix, model.PackageIndexKey(packageName)))
}

func (c *Catalog) relative(key string) string {
	if c.prefix == "" {
		return key
	}
	return strings.TrimPrefix(key, c.prefix+"/")
}
