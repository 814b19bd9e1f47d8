package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var downloadPackage = &cobra.Command{
	Use:   "download-package",
	Short: "Download a package to a folder",
	Long: `Download a package from the block store into a local folder, using the version index
published as {versionindexstorageuri}/versions/{package}.lvi.

With --verify-index, the version index is looked up first and a missing package fails
without launching any transfer.`,
	Example: `% prebuilt download-package --folder ./Engine --package 101`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		optionInputs := newCliOptionInputs(settings, &prebuiltFlags)
		downloader, err := optionInputs.downloader(ctx, prebuiltFlags.pkg.verifyIndex)
		if err != nil {
			wrapFatalln("download package", err)
			return
		}
		logger, _ := optionInputs.getLogger()
		logger.Info("downloading package",
			zap.String("package", prebuiltFlags.pkg.name),
			zap.String("folder", prebuiltFlags.pkg.folder),
			zap.String("protocol", protocolOf(optionInputs.settings.BlockStorageURI)),
		)

		ok, err := downloader.Download(ctx, prebuiltFlags.pkg.folder, prebuiltFlags.pkg.name)
		if err != nil {
			wrapFatalln("download package", err)
			return
		}
		if !ok {
			wrapFatalWithCodef(1, "download of package %s failed", prebuiltFlags.pkg.name)
			return
		}
		infoLogger.Println(color.GreenString("package %s downloaded", prebuiltFlags.pkg.name))
	},
}

func init() {
	requireFlags(downloadPackage,
		addFolderFlag(downloadPackage),
		addPackageFlag(downloadPackage),
	)
	addVerifyIndexFlag(downloadPackage)

	rootCmd.AddCommand(downloadPackage)
}
