package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageURI(t *testing.T) {
	assert.Equal(t, "gs://bucket/idx/versions/ue4-5.3.lvi",
		PackageURI(VersionIndexStorageURI("gs://bucket/idx"), "ue4-5.3").String())
	assert.Equal(t, "s3://bucket/versions/100.lvi",
		PackageURI(VersionIndexStorageURI("s3://bucket"), "100").String())

	// no normalization takes place
	assert.Equal(t, "gs://bucket/idx//versions/a b.lvi",
		PackageURI(VersionIndexStorageURI("gs://bucket/idx/"), "a b").String())
	assert.Equal(t, "/versions/.lvi", PackageURI("", "").String())

	assert.True(t, VersionIndexURI{}.IsZero())
	assert.False(t, PackageURI("idx", "p").IsZero())
}

func TestPackageIndexKey(t *testing.T) {
	assert.Equal(t, "versions/ue4-5.3.lvi", PackageIndexKey("ue4-5.3"))

	name, ok := PackageNameFromKey(PackageIndexKey("ue4-5.3"))
	assert.True(t, ok)
	assert.Equal(t, "ue4-5.3", name)
}

func TestPackageNameFromKey(t *testing.T) {
	for _, key := range []string{
		"",
		"versions/",
		"versions/.lvi",
		"versions/a.txt",
		"other/a.lvi",
		"versions/nested/a.lvi",
		"blocks/0001",
	} {
		_, ok := PackageNameFromKey(key)
		assert.Falsef(t, ok, "expected %q not to be a version index", key)
	}

	name, ok := PackageNameFromKey("versions/101.lvi")
	assert.True(t, ok)
	assert.Equal(t, "101", name)
}
