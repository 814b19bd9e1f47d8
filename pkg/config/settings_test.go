package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() Settings {
	return Settings{
		ClientID:               "id",
		ClientSecret:           "secret",
		EndpointOverride:       "http://minio:9000",
		RegionOverride:         "eu-west-1",
		BlockStorageURI:        "s3://bucket/blocks",
		VersionIndexStorageURI: "s3://bucket/idx",
		InstallFolder:          "engine",
		InstalledVersionFile:   DefaultInstalledVersionFile,
		DesiredVersionFile:     DefaultDesiredVersionFile,
	}
}

func TestApplication(t *testing.T) {
	app := validSettings().Application(DefaultCredentialsFile)
	assert.Equal(t, Application{
		ClientID:         "id",
		ClientSecret:     "secret",
		CredentialsFile:  DefaultCredentialsFile,
		EndpointOverride: "http://minio:9000",
		RegionOverride:   "eu-west-1",
	}, app)
}

func TestValidate(t *testing.T) {
	s := validSettings()
	require.NoError(t, s.ValidateStorage())
	require.NoError(t, s.ValidateInstall())

	for _, mutate := range []func(*Settings){
		func(s *Settings) { s.BlockStorageURI = "" },
		func(s *Settings) { s.VersionIndexStorageURI = "" },
		func(s *Settings) { s.InstallFolder = "" },
		func(s *Settings) { s.InstalledVersionFile = "" },
		func(s *Settings) { s.DesiredVersionFile = "" },
	} {
		s := validSettings()
		mutate(&s)
		assert.Error(t, s.ValidateInstall())
	}

	s = validSettings()
	s.InstallFolder = ""
	assert.NoError(t, s.ValidateStorage())
}

func TestDefaultLongtail(t *testing.T) {
	assert.Contains(t, DefaultLongtail(), "longtail")
}
