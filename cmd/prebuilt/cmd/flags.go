// Copyright © 2018 One Concern

package cmd

import (
	"fmt"

	"github.com/oneconcern/prebuilt/pkg/dlogger"
	"github.com/spf13/cobra"
)

type flagsT struct {
	root struct {
		credFile  string
		logLevel  string
		logFormat string
		logOutput string
		longtail  string
	}
	pkg struct {
		folder      string
		name        string
		verifyIndex bool
	}
}

var prebuiltFlags = flagsT{}

func addLogLevelFlag(cmd *cobra.Command) string {
	logLevel := "loglevel"
	cmd.PersistentFlags().StringVar(&prebuiltFlags.root.logLevel, logLevel, dlogger.LogLevelInfo,
		"The logging level. Levels by increasing order of verbosity: none, error, warn, info, debug")
	return logLevel
}

func addLogFormatFlag(cmd *cobra.Command) string {
	logFormat := "log-format"
	cmd.PersistentFlags().StringVar(&prebuiltFlags.root.logFormat, logFormat, dlogger.FormatConsole,
		"The logging format: console or json")
	return logFormat
}

func addLogOutputFlag(cmd *cobra.Command) string {
	logOutput := "log-output"
	cmd.PersistentFlags().StringVar(&prebuiltFlags.root.logOutput, logOutput, "stdout",
		"Where to write logs: stdout, stderr or a file path")
	return logOutput
}

func addCredentialFlag(cmd *cobra.Command) string {
	credential := "credential"
	cmd.PersistentFlags().StringVar(&prebuiltFlags.root.credFile, credential, "",
		"The path to the Google application default credentials file. Defaults to application-default-credentials.json")
	return credential
}

func addLongtailFlag(cmd *cobra.Command) string {
	longtail := "longtail"
	cmd.PersistentFlags().StringVar(&prebuiltFlags.root.longtail, longtail, "",
		"The path to the longtail executable. Overrides the configuration")
	return longtail
}

func addFolderFlag(cmd *cobra.Command) string {
	folder := "folder"
	cmd.Flags().StringVar(&prebuiltFlags.pkg.folder, folder, "", "The local folder to upload from or download to")
	return folder
}

func addPackageFlag(cmd *cobra.Command) string {
	name := "package"
	cmd.Flags().StringVar(&prebuiltFlags.pkg.name, name, "", "The name of the package, e.g. a build id")
	return name
}

func addVerifyIndexFlag(cmd *cobra.Command) string {
	verify := "verify-index"
	cmd.Flags().BoolVar(&prebuiltFlags.pkg.verifyIndex, verify, false,
		"Check that the version index of the package is published before downloading")
	return verify
}

/** misc util */

// requireFlags sets a flag (local to the command or inherited) as required
func requireFlags(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		err := cmd.MarkFlagRequired(flag)
		if err != nil {
			err = cmd.MarkPersistentFlagRequired(flag)
		}
		if err != nil {
			wrapFatalln(fmt.Sprintf("error attempting to mark the required flag %q", flag), err)
			return
		}
	}
}
