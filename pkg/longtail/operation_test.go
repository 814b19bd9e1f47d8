package longtail

import (
	"testing"

	"github.com/oneconcern/prebuilt/pkg/errors"
	"github.com/oneconcern/prebuilt/pkg/longtail/status"
	"github.com/oneconcern/prebuilt/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArguments(t *testing.T) {
	index := model.PackageURI("gs://bucket/idx", "ue4-5.3")

	args, err := Arguments(Upload, "gs://bucket/blocks", "/work/my engine", index)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"upsync",
		"--source-path", "/work/my engine",
		"--target-path", "gs://bucket/idx/versions/ue4-5.3.lvi",
		"--storage-uri", "gs://bucket/blocks",
	}, args)

	args, err = Arguments(Download, "gs://bucket/blocks", "/work/my engine", index)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"downsync",
		"--source-path", "gs://bucket/idx/versions/ue4-5.3.lvi",
		"--target-path", "/work/my engine",
		"--storage-uri", "gs://bucket/blocks",
	}, args)

	_, err = Arguments(Operation("sync"), "gs://bucket/blocks", "/work", index)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrUnsupportedOperation))
}

func TestCommandLine(t *testing.T) {
	args, err := Arguments(Download, "s3://bucket/blocks", `C:\work\my engine`, model.PackageURI("s3://bucket", "100"))
	require.NoError(t, err)
	assert.Equal(t,
		`longtail.exe downsync --source-path "s3://bucket/versions/100.lvi" --target-path "C:\work\my engine" --storage-uri "s3://bucket/blocks"`,
		commandLine("longtail.exe", args))
}
