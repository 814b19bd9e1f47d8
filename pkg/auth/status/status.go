// Package status declares error constants returned by the various
// implementations of the Authable interface.
//
// NOTE: such constants are located in a separate package to avoid
// creating undue cyclical dependencies between pkg/auth and one
// of its implementions.
package status

import "github.com/oneconcern/prebuilt/pkg/errors"

var (
	// Sentinel errors returned by implementations of interfaces defined by auth

	// ErrInvalidCredentials indicates that the credentials passed are invalid
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserinfo indicates that user information could not be retrieved
	ErrUserinfo = errors.New("could not retrieve userinfo")

	// ErrAuthService indicates that we coud not instantiate an authentication service
	ErrAuthService = errors.New("could not create oauth service")

	// ErrEmailScope indicates that the email scope is missing from the credentials
	ErrEmailScope = errors.New("email scope is mandatory to identify the user")

	// ErrMissingClient indicates that no OAuth client id or secret is configured
	ErrMissingClient = errors.New("oauth client id and secret are required")

	// ErrConsent indicates that the user did not complete the consent flow
	ErrConsent = errors.New("authorization was not granted")

	// ErrCredentialsFile indicates that the credentials file could not be read or written
	ErrCredentialsFile = errors.New("cannot access credentials file")
)
