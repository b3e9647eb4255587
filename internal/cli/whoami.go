// whoami.go implements the "aula whoami" command.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account and its resolved role",
	RunE:  runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	_, svcs, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	if !svcs.Session.Authenticated() {
		return fmt.Errorf("not signed in; run: aula login")
	}

	if p := svcs.Session.Profile(); p != nil {
		fmt.Printf("Name:  %s\n", p.Name)
		fmt.Printf("Email: %s\n", p.Email)
	}

	res := svcs.Session.ResolveRole(context.Background())
	fmt.Printf("Role:  %s\n", res.Role)

	if exp, ok := svcs.Session.TokenExpiry(); ok {
		state := "expires"
		if exp.Before(time.Now()) {
			state = "expired"
		}
		fmt.Printf("Token: %s %s\n", state, exp.Format(time.RFC3339))
	}
	return nil
}
