// status.go implements the "aula status" command.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show client configuration and session state",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, svcs, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Println("Aula Status")
	fmt.Printf("Backend:  %s\n", cfg.API.BaseURL)
	if cfg.API.TimeoutSeconds > 0 {
		fmt.Printf("Timeout:  %ds\n", cfg.API.TimeoutSeconds)
	}
	fmt.Printf("Data dir: %s\n", cfg.DataDir)
	fmt.Println()

	if !svcs.Session.Authenticated() {
		fmt.Println("Session:  signed out")
		return nil
	}

	fmt.Println("Session:  signed in")
	if p := svcs.Session.Profile(); p != nil {
		fmt.Printf("Account:  %s\n", p.Email)
	}
	if exp, ok := svcs.Session.TokenExpiry(); ok {
		if exp.Before(time.Now()) {
			fmt.Printf("Token:    expired %s\n", exp.Format(time.RFC3339))
		} else {
			fmt.Printf("Token:    valid until %s\n", exp.Format(time.RFC3339))
		}
	}
	return nil
}
