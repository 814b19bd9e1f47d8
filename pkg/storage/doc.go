// Copyright © 2018 One Concern

// Package storage provides a read-only view on the objects held by a storage backend.
//
// This package supports the following backends:
//   - GCS (Google)
//   - S3 (AWS, or any S3 compatible endpoint)
//   - local file system
package storage
