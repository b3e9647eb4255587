// init.go implements the "aula init" command.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aula-dev/aula/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Create ~/.aula/config.yaml with default settings. Edit it, or set
AULA_API_URL, to point the client at your backend.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cli: resolving home directory: %w", err)
	}

	path := filepath.Join(config.Dir(home), "config.yaml")
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists; use --force to overwrite", path)
	}

	if err := config.Write(home, config.Default(home)); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
