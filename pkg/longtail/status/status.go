// Package status declares error constants returned by the longtail package.
//
// NOTE: such constants are located in a separate package so that callers
// may qualify errors without depending on the transfer implementation.
package status

import "github.com/oneconcern/prebuilt/pkg/errors"

var (
	// ErrUnsupportedProtocol indicates that no environment can be built for the storage protocol.
	// This is a configuration error: no process is ever launched.
	ErrUnsupportedProtocol = errors.New("unsupported protocol")

	// ErrUnsupportedOperation indicates an operation other than upsync or downsync
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrLaunch indicates that the transfer tool could not be launched (not found, not executable)
	ErrLaunch = errors.New("cannot launch transfer tool")

	// ErrWait indicates that the transfer tool ran but its outcome could not be collected
	ErrWait = errors.New("lost track of transfer tool")

	// ErrCredentials indicates that the credentials could not be refreshed before a transfer
	ErrCredentials = errors.New("cannot refresh credentials")
)
