package config

import (
	"fmt"
	"runtime"

	"github.com/oneconcern/prebuilt/pkg/model"
)

const (
	// DefaultInstalledVersionFile records the build currently installed
	DefaultInstalledVersionFile = "InstalledVersion.json"

	// DefaultDesiredVersionFile records the build the workspace should have
	DefaultDesiredVersionFile = "DesiredVersion.json"
)

// Settings describes the configuration file.
type Settings struct {
	ClientID               string                       `mapstructure:"clientid" json:"ClientID,omitempty"`
	ClientSecret           string                       `mapstructure:"clientsecret" json:"ClientSecret,omitempty"`
	EndpointOverride       string                       `mapstructure:"endpointoverride" json:"EndpointOverride,omitempty"`
	RegionOverride         string                       `mapstructure:"regionoverride" json:"RegionOverride,omitempty"`
	BlockStorageURI        model.BlockStorageURI        `mapstructure:"blockstorageuri" json:"BlockStorageURI,omitempty"`
	VersionIndexStorageURI model.VersionIndexStorageURI `mapstructure:"versionindexstorageuri" json:"VersionIndexStorageURI,omitempty"`
	InstallFolder          string                       `mapstructure:"installfolder" json:"InstallFolder,omitempty"`
	InstalledVersionFile   string                       `mapstructure:"installedversionfile" json:"InstalledVersionFile,omitempty"`
	DesiredVersionFile     string                       `mapstructure:"desiredversionfile" json:"DesiredVersionFile,omitempty"`
	Longtail               string                       `mapstructure:"longtail" json:"Longtail,omitempty"`
	Prerequisites          []string                     `mapstructure:"prerequisites" json:"Prerequisites,omitempty"`
	MetricsFile            string                       `mapstructure:"metricsfile" json:"MetricsFile,omitempty"`
}

// DefaultLongtail is the name of the transfer tool executable, looked up in PATH
func DefaultLongtail() string {
	if runtime.GOOS == "windows" {
		return "longtail.exe"
	}
	return "longtail"
}

// Application configuration derived from these settings
func (s Settings) Application(credentialsFile string) Application {
	return Application{
		ClientID:         s.ClientID,
		ClientSecret:     s.ClientSecret,
		CredentialsFile:  credentialsFile,
		EndpointOverride: s.EndpointOverride,
		RegionOverride:   s.RegionOverride,
	}
}

// ValidateStorage checks that both storage locations are set
func (s Settings) ValidateStorage() error {
	switch {
	case s.BlockStorageURI == "":
		return fmt.Errorf("missing configuration: blockstorageuri")
	case s.VersionIndexStorageURI == "":
		return fmt.Errorf("missing configuration: versionindexstorageuri")
	}
	return nil
}

// ValidateInstall checks the settings required by the version reconciliation
func (s Settings) ValidateInstall() error {
	if err := s.ValidateStorage(); err != nil {
		return err
	}
	switch {
	case s.InstallFolder == "":
		return fmt.Errorf("missing configuration: installfolder")
	case s.InstalledVersionFile == "":
		return fmt.Errorf("missing configuration: installedversionfile")
	case s.DesiredVersionFile == "":
		return fmt.Errorf("missing configuration: desiredversionfile")
	}
	return nil
}

// DefaultPrerequisites is the prerequisites installer command shipped with the engine, relative
// to the install folder. Other platforms have no prerequisites installer.
func DefaultPrerequisites() []string {
	if runtime.GOOS == "windows" {
		return []string{`Engine\Extras\Redist\en-us\UE4PrereqSetup_x64.exe`, "/quiet", "/norestart"}
	}
	return nil
}
