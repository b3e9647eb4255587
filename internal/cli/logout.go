// logout.go implements the "aula logout" command.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var logoutYes bool

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored session",
	Long: `Invalidate the session on the backend and discard the locally
stored token and profile. Local state is cleared even when the backend
cannot be reached.`,
	RunE: runLogout,
}

func init() {
	logoutCmd.Flags().BoolVar(&logoutYes, "yes", false, "Skip the confirmation prompt")
}

func runLogout(cmd *cobra.Command, args []string) error {
	_, svcs, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	if !svcs.Session.Authenticated() {
		fmt.Println("Not signed in.")
		return nil
	}

	if !logoutYes {
		answer, err := promptLine("Discard the stored session? [y/N] ")
		if err != nil {
			return err
		}
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := svcs.Session.Logout(context.Background()); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}
