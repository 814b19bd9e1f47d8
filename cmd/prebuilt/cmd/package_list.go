package cmd

import (
	"github.com/spf13/cobra"
)

var listPackages = &cobra.Command{
	Use:   "list-packages",
	Short: "List published packages",
	Long:  `List the packages which have a version index published under the version index storage.`,
	Example: `% prebuilt list-packages
100
101`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		optionInputs := newCliOptionInputs(settings, &prebuiltFlags)
		c, err := optionInputs.catalog(ctx)
		if err != nil {
			wrapFatalln("open version index storage", err)
			return
		}
		packages, err := c.Packages(ctx)
		if err != nil {
			wrapFatalln("list packages from "+c.String(), err)
			return
		}
		for _, name := range packages {
			infoLogger.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listPackages)
}
