package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var uploadPackage = &cobra.Command{
	Use:   "upload-package",
	Short: "Upload a folder as a package",
	Long: `Upload the content of a local folder to the block store, and publish its version index
as {versionindexstorageuri}/versions/{package}.lvi.

Google credentials are refreshed first when the block store lives on Google Cloud Storage.`,
	Example: `% prebuilt upload-package --folder ./Engine --package 101`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		optionInputs := newCliOptionInputs(settings, &prebuiltFlags)
		client, err := optionInputs.client()
		if err != nil {
			wrapFatalln("upload package", err)
			return
		}
		logger, _ := optionInputs.getLogger()
		logger.Info("uploading package",
			zap.String("package", prebuiltFlags.pkg.name),
			zap.String("folder", prebuiltFlags.pkg.folder),
			zap.String("protocol", protocolOf(optionInputs.settings.BlockStorageURI)),
		)

		ok, err := client.Upload(ctx, prebuiltFlags.pkg.folder, prebuiltFlags.pkg.name)
		if err != nil {
			wrapFatalln("upload package", err)
			return
		}
		if !ok {
			wrapFatalWithCodef(1, "upload of package %s failed", prebuiltFlags.pkg.name)
			return
		}
		infoLogger.Println(color.GreenString("package %s uploaded", prebuiltFlags.pkg.name))
	},
}

func init() {
	requireFlags(uploadPackage,
		addFolderFlag(uploadPackage),
		addPackageFlag(uploadPackage),
	)

	rootCmd.AddCommand(uploadPackage)
}
