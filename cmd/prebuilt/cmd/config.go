package cmd

import (
	"github.com/oneconcern/prebuilt/pkg/config"
	"github.com/spf13/viper"
)

// configKeys lists the settings which may be set from the environment, e.g. PREBUILT_BLOCKSTORAGEURI
var configKeys = []string{
	"clientid",
	"clientsecret",
	"endpointoverride",
	"regionoverride",
	"blockstorageuri",
	"versionindexstorageuri",
	"installfolder",
	"installedversionfile",
	"desiredversionfile",
	"longtail",
	"prerequisites",
	"metricsfile",
}

func newSettings() (*config.Settings, error) {
	var s config.Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
