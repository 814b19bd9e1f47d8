// Copyright © 2018 One Concern

package storage

import (
	"context"
	"strings"
)

// Store implementations know how to look up objects by key.
//
// Keys are slash separated paths relative to the root of the store.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	KeysPrefix(ctx context.Context, prefix string) ([]string, error)
}

// JoinKey joins a key prefix and a key, with exactly one slash between non-empty parts
func JoinKey(prefix, key string) string {
	prefix = strings.Trim(prefix, "/")
	key = strings.TrimLeft(key, "/")
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix + "/"
	default:
		return prefix + "/" + key
	}
}
