package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var createUserAuth = &cobra.Command{
	Use:   "create-user-auth",
	Short: "Sign in with a Google user account",
	Long: `Run the OAuth consent flow with the configured client id and secret, and write
user credentials to the application default credentials file (see --credential).

These credentials are used for transfers to and from Google Cloud Storage.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		optionInputs := newCliOptionInputs(settings, &prebuiltFlags)
		authorizer, err := optionInputs.authorizer()
		if err != nil {
			wrapFatalln("create user credentials", err)
			return
		}
		if err = authorizer.CreateUserCredentials(ctx, optionInputs.application()); err != nil {
			wrapFatalln("create user credentials", err)
			return
		}
		infoLogger.Println(color.GreenString("credentials written to %s", optionInputs.credentialsFile()))
	},
}

var clearAuth = &cobra.Command{
	Use:   "clear-auth",
	Short: "Sign out",
	Long:  `Remove the application default credentials file (see --credential).`,
	Run: func(cmd *cobra.Command, args []string) {
		optionInputs := newCliOptionInputs(settings, &prebuiltFlags)
		authorizer, err := optionInputs.authorizer()
		if err != nil {
			wrapFatalln("clear credentials", err)
			return
		}
		if err = authorizer.RemoveCredentials(optionInputs.credentialsFile()); err != nil {
			wrapFatalln("clear credentials", err)
			return
		}
		infoLogger.Println("credentials removed")
	},
}

var whoami = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in Google user",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		optionInputs := newCliOptionInputs(settings, &prebuiltFlags)
		authorizer, err := optionInputs.authorizer()
		if err != nil {
			wrapFatalln("resolve principal", err)
			return
		}
		principal, err := authorizer.Principal(ctx, optionInputs.credentialsFile())
		if err != nil {
			wrapFatalln("resolve principal", err)
			return
		}
		infoLogger.Println(principal.String())
	},
}

func init() {
	rootCmd.AddCommand(createUserAuth)
	rootCmd.AddCommand(clearAuth)
	rootCmd.AddCommand(whoami)
}
