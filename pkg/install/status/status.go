// Package status declares error constants returned by the install package.
package status

import "github.com/oneconcern/prebuilt/pkg/errors"

var (
	// ErrReadRecord indicates that an existing version record could not be read or decoded
	ErrReadRecord = errors.New("cannot read version record")

	// ErrWriteRecord indicates that the installed version record could not be persisted
	ErrWriteRecord = errors.New("cannot write version record")

	// ErrNoDesiredVersion indicates that no desired build is recorded while another build is installed
	ErrNoDesiredVersion = errors.New("no desired version recorded")

	// ErrDownload indicates that the download could not be attempted (configuration or launch error)
	ErrDownload = errors.New("download error")

	// ErrPrerequisites indicates that the prerequisites installer could not be run
	ErrPrerequisites = errors.New("prerequisites installer error")
)
