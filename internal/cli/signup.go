// signup.go implements the "aula signup" command for student registration.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aula-dev/aula/internal/auth"
)

var (
	signupName     string
	signupLastName string
	signupEmail    string
	signupPassword string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a student account",
	Long: `Register a new student account and sign in with it. Only student
accounts can self-register; teacher and super-user accounts are
provisioned on the backend.`,
	RunE: runSignup,
}

func init() {
	signupCmd.Flags().StringVar(&signupName, "name", "", "First name")
	signupCmd.Flags().StringVar(&signupLastName, "last-name", "", "Last name")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Account email")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Password, 8 characters minimum (prompted when omitted)")
}

func runSignup(cmd *cobra.Command, args []string) error {
	_, svcs, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	form := auth.SignupForm{
		Name:     signupName,
		LastName: signupLastName,
		Email:    signupEmail,
		Password: signupPassword,
	}

	if form.Name == "" {
		if form.Name, err = promptLine("First name: "); err != nil {
			return err
		}
	}
	if form.LastName == "" {
		if form.LastName, err = promptLine("Last name: "); err != nil {
			return err
		}
	}
	if form.Email == "" {
		if form.Email, err = promptLine("Email: "); err != nil {
			return err
		}
	}
	if form.Password == "" {
		if form.Password, err = promptPassword("Password: "); err != nil {
			return err
		}
	}

	if err := svcs.Session.SignupStudent(context.Background(), form); err != nil {
		return err
	}
	fmt.Printf("Account created. Signed in as %s.\n", form.Email)
	return nil
}
