// Copyright © 2018 One Concern

// Package localfs exposes a folder of the local file system as a storage.Store
package localfs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oneconcern/prebuilt/pkg/storage"
	"github.com/oneconcern/prebuilt/pkg/storage/status"
	"github.com/spf13/afero"
)

// New creates a new local file system backed store.
//
// Keys are resolved relative to the root of fs: use afero.NewBasePathFs to expose a folder.
func New(fs afero.Fs) storage.Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &localFS{
		fs: fs,
	}
}

// NewAt creates a store rooted at folder on the OS file system
func NewAt(folder string) storage.Store {
	return New(afero.NewBasePathFs(afero.NewOsFs(), folder))
}

type localFS struct {
	fs afero.Fs
}

func (l *localFS) Has(_ context.Context, key string) (bool, error) {
	fi, err := l.fs.Stat(filepath.FromSlash(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, toSentinelErrors(err)
	}
	return !fi.IsDir(), nil
}

// KeysPrefix walks the folders matching prefix. Keys are returned with slash separators, sorted.
func (l *localFS) KeysPrefix(ctx context.Context, prefix string) ([]string, error) {
	// only walk the deepest folder fully spelled out by the prefix
	root := "."
	if i := strings.LastIndex(prefix, "/"); i > 0 {
		root = filepath.FromSlash(prefix[:i])
	}

	if _, err := l.fs.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, toSentinelErrors(err)
	}

	var keys []string
	err := afero.Walk(l.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if info.IsDir() {
			return nil
		}
		key := filepath.ToSlash(filepath.Clean(path))
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	sort.Strings(keys)
	return keys, nil
}

func (l *localFS) String() string {
	const localfs = "localfs"
	switch fs := l.fs.(type) {
	case *afero.BasePathFs:
		pp, err := fs.RealPath("")
		if err != nil {
			return localfs
		}
		return localfs + "@" + pp
	default:
		return localfs
	}
}

func toSentinelErrors(err error) error {
	switch {
	case err == nil:
		return nil
	case os.IsNotExist(err):
		return status.ErrNotExists.Wrap(err)
	case os.IsPermission(err):
		return status.ErrForbidden.Wrap(err)
	default:
		return status.ErrStorageAPI.Wrap(err)
	}
}
