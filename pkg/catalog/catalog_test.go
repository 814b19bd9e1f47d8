package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oneconcern/prebuilt/pkg/config"
	"github.com/oneconcern/prebuilt/pkg/errors"
	"github.com/oneconcern/prebuilt/pkg/model"
	"github.com/oneconcern/prebuilt/pkg/storage/localfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testFs(t *testing.T, root string) afero.Fs {
	fs := afero.NewMemMapFs()
	for _, key := range []string{
		"versions/101.lvi",
		"versions/100.lvi",
		"versions/readme.md",
		"versions/old/99.lvi",
		"chunks/0a1b",
	} {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(root, filepath.FromSlash(key)), []byte("index"), 0644))
	}
	return fs
}

func TestLocation(t *testing.T) {
	for _, toPin := range []struct {
		root           model.VersionIndexStorageURI
		bucket, prefix string
	}{
		{root: "gs://bucket", bucket: "bucket"},
		{root: "gs://bucket/", bucket: "bucket"},
		{root: "gs://bucket/indexes/engine", bucket: "bucket", prefix: "indexes/engine"},
		{root: "s3://bucket/indexes/", bucket: "bucket", prefix: "indexes"},
		{root: "/mnt/share/indexes", prefix: "/mnt/share/indexes"},
		{root: `C:\indexes`, prefix: `C:\indexes`},
	} {
		testCase := toPin
		t.Run(testCase.root.String(), func(t *testing.T) {
			bucket, prefix := Location(testCase.root)
			assert.Equal(t, testCase.bucket, bucket)
			assert.Equal(t, testCase.prefix, prefix)
		})
	}
}

func TestPackages(t *testing.T) {
	for _, prefix := range []string{"", "indexes/engine"} {
		c := New(localfs.New(testFs(t, prefix)), prefix)

		packages, err := c.Packages(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"100", "101"}, packages)

		has, err := c.Has(context.Background(), "101")
		require.NoError(t, err)
		assert.True(t, has)

		has, err = c.Has(context.Background(), "102")
		require.NoError(t, err)
		assert.False(t, has)
	}
}

func TestOpenLocal(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "versions"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "versions", "7.lvi"), []byte("index"), 0644))

	c, err := Open(context.Background(), config.Application{}, model.VersionIndexStorageURI(root))
	require.NoError(t, err)

	packages, err := c.Packages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, packages)
	assert.Contains(t, c.String(), "localfs@")

	has, err := c.Has(context.Background(), "7")
	require.NoError(t, err)
	assert.True(t, has)

	// relative roots resolve against the working directory
	wd, err := os.Getwd()
	require.NoError(t, err)
	relative, err := filepath.Rel(wd, root)
	require.NoError(t, err)

	c, err = Open(context.Background(), config.Application{}, model.VersionIndexStorageURI(relative))
	require.NoError(t, err)
	packages, err = c.Packages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, packages)
}

type mockDownloader struct {
	mock.Mock
}

func (m *mockDownloader) Download(ctx context.Context, folder, packageName string) (bool, error) {
	args := m.Called(ctx, folder, packageName)
	return args.Bool(0), args.Error(1)
}

func TestVerify(t *testing.T) {
	c := New(localfs.New(testFs(t, "")), "")

	next := new(mockDownloader)
	next.On("Download", mock.Anything, "/work/engine", "101").Return(true, nil).Once()
	d := Verify(c, next)

	ok, err := d.Download(context.Background(), "/work/engine", "101")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.Download(context.Background(), "/work/engine", "102")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPackageNotFound))
	assert.False(t, ok)

	next.AssertExpectations(t)
	next.AssertNotCalled(t, "Download", mock.Anything, mock.Anything, "102")
}
