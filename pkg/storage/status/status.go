// Copyright © 2018 One Concern

// Package status declares the errors returned by the catalog stores.
//
// Kept apart from pkg/storage so that store implementations and their
// callers share sentinels without importing each other.
package status

import "github.com/oneconcern/prebuilt/pkg/errors"

var (
	// ErrNotExists is returned when a version index or its bucket is missing
	ErrNotExists = errors.New("object doesn't exist")

	// ErrNotFound is returned when the backend API does not know the target resource
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when the credentials are rejected
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the credentials may not read the catalog
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidResource is returned for an invalid bucket name
	ErrInvalidResource = errors.New("invalid storage resource name")

	// ErrStorageAPI wraps any other backend error
	ErrStorageAPI = errors.New("storage API error")
)
