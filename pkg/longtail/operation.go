package longtail

import (
	"strconv"

	"github.com/oneconcern/prebuilt/pkg/longtail/status"
	"github.com/oneconcern/prebuilt/pkg/model"
)

// Operation performed by the transfer tool
type Operation string

const (
	// Upload a local folder to remote storage
	Upload Operation = "upsync"
	// Download a package from remote storage into a local folder
	Download Operation = "downsync"
)

func (op Operation) String() string {
	return string(op)
}

// Arguments builds the argument vector of the transfer tool for an operation.
//
// For Upload, the source is the local folder and the target the version index.
// For Download, the source is the version index and the target the local folder.
func Arguments(op Operation, blocks model.BlockStorageURI, localPath string, index model.VersionIndexURI) ([]string, error) {
	var source, target string
	switch op {
	case Upload:
		source, target = localPath, index.String()
	case Download:
		source, target = index.String(), localPath
	default:
		return nil, status.ErrUnsupportedOperation.Wrap(unknownOperation(op))
	}
	return []string{
		string(op),
		"--source-path", source,
		"--target-path", target,
		"--storage-uri", blocks.String(),
	}, nil
}

type unknownOperation Operation

func (op unknownOperation) Error() string {
	return "operation: " + strconv.Quote(string(op))
}

// commandLine renders the command for operators, with every value quoted
func commandLine(executable string, args []string) string {
	line := executable
	for i, arg := range args {
		if i == 0 {
			line += " " + arg
			continue
		}
		if len(arg) > 2 && arg[:2] == "--" {
			line += " " + arg
			continue
		}
		line += ` "` + arg + `"`
	}
	return line
}
