package cmd

import (
	"github.com/oneconcern/prebuilt/pkg/install"
	"github.com/spf13/cobra"
)

var updateLocalVersion = &cobra.Command{
	Use:     "update-local-version",
	Aliases: []string{"update-local-ue4-version"},
	Short:   "Install the desired build",
	Long: `Compare the installed build with the desired build and, when they differ, download
the desired build into the install folder and run the prerequisites installer.

The installed build is recorded only once the prerequisites installer succeeded, so an
interrupted or failed update is retried in full on the next run.

The exit code is 0 when the desired build is installed, 1 when the download failed,
and the exit code of the prerequisites installer when it failed.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		optionInputs := newCliOptionInputs(settings, &prebuiltFlags)
		reconciler, err := optionInputs.reconciler(ctx)
		if err != nil {
			wrapFatalln("update local version", err)
			return
		}

		outcome, err := reconciler.Reconcile(ctx)
		if err != nil {
			wrapFatalln("update local version", err)
			return
		}
		if outcome.State != install.StateInstalled {
			wrapFatalWithCodef(outcome.ExitCode, "update to the desired version failed while %s", outcome.FailedStage)
			return
		}
	},
}

func init() {
	addVerifyIndexFlag(updateLocalVersion)

	rootCmd.AddCommand(updateLocalVersion)
}
