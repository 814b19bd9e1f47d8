// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/oneconcern/prebuilt/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envConfig    = "PREBUILT_CONFIG"
	envPrefix    = "prebuilt"
	configName   = "prebuilt.config"
	aliasUE4Path = "ue4folder"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "prebuilt",
	Short: "prebuilt distributes prebuilt packages through a deduplicated block store",
	Long: `prebuilt uploads and downloads versioned packages (such as a prebuilt game engine)
to and from a content-addressed block store, by driving the longtail transfer tool.

Block stores may live on Google Cloud Storage (gs://), on S3 or any S3 compatible
endpoint (s3://), or on a local or mounted file system.

prebuilt also keeps a workstation up to date: it compares the installed build
with the desired build, downloads the desired one and runs the prerequisites installer.
`,
	// upstream api note:  *PostRun functions aren't called in case of a panic() in Run
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		flushMetrics()
	},
}

var settings *config.Settings

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addLogLevelFlag(rootCmd)
	addLogFormatFlag(rootCmd)
	addLogOutputFlag(rootCmd)
	addCredentialFlag(rootCmd)
	addLongtailFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("installedversionfile", config.DefaultInstalledVersionFile)
	viper.SetDefault("desiredversionfile", config.DefaultDesiredVersionFile)
	viper.SetDefault("longtail", config.DefaultLongtail())
	viper.SetDefault("prerequisites", config.DefaultPrerequisites())

	if os.Getenv(envConfig) != "" {
		// Use config file from the environment.
		viper.SetConfigFile(os.Getenv(envConfig))
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(configName)
		viper.SetConfigType("json")
	}

	viper.SetEnvPrefix(envPrefix)
	for _, key := range configKeys {
		_ = viper.BindEnv(key)
	}
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		infoLogger.Println("Using config file:", viper.ConfigFileUsed())
	}
	// former name of the install folder, registered after reading so values from the file are moved over
	viper.RegisterAlias(aliasUE4Path, "installfolder")

	var err error
	settings, err = newSettings()
	if err != nil {
		wrapFatalln("invalid configuration", err)
		return
	}
}
