package cmd

import (
	"github.com/spf13/cobra"
)

var runPrerequisites = &cobra.Command{
	Use:   "run-prerequisites-installer",
	Short: "Run the prerequisites installer of the installed package",
	Long: `Run the prerequisites installer configured with "prerequisites", from the install folder.

The exit code is the one of the installer.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		optionInputs := newCliOptionInputs(settings, &prebuiltFlags)
		if optionInputs.settings.InstallFolder == "" {
			wrapFatalln("missing configuration: installfolder", nil)
			return
		}
		installer, err := optionInputs.installer()
		if err != nil {
			wrapFatalln("run prerequisites installer", err)
			return
		}
		code, err := installer.Run(ctx, optionInputs.settings.InstallFolder)
		if err != nil {
			wrapFatalln("run prerequisites installer", err)
			return
		}
		if code != 0 {
			wrapFatalWithCodef(code, "prerequisites installer failed with exit code %d", code)
			return
		}
	},
}

func init() {
	rootCmd.AddCommand(runPrerequisites)
}
