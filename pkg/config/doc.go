// Package config holds the configuration of a prebuilt invocation.
//
// Settings mirror the JSON configuration file (decoded by viper in the CLI).
// Application is the long-lived subset handed to the transfer layer: client identity,
// application default credentials file and S3 endpoint/region overrides.
package config
