package catalog

import (
	"context"

	"go.uber.org/zap"
)

// Downloader downloads a package into a folder
type Downloader interface {
	Download(ctx context.Context, folder, packageName string) (bool, error)
}

type verified struct {
	catalog *Catalog
	next    Downloader
}

// Verify decorates a downloader so that a package is looked up in the catalog before being downloaded.
// A package without version index fails with ErrPackageNotFound and next is not called.
func Verify(c *Catalog, next Downloader) Downloader {
	return &verified{catalog: c, next: next}
}

func (v *verified) Download(ctx context.Context, folder, packageName string) (bool, error) {
	has, err := v.catalog.Has(ctx, packageName)
	if err != nil {
		return false, err
	}
	if !has {
		v.catalog.l.Error("no version index published for package", zap.String("package", packageName), zap.Stringer("catalog", v.catalog))
		return false, ErrPackageNotFound
	}
	return v.next.Download(ctx, folder, packageName)
}
