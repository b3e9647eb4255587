// Package cli defines Cobra command definitions for the aula CLI.
// This file contains the root command, shared bootstrap, and help output.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aula-dev/aula/internal/activity"
	"github.com/aula-dev/aula/internal/admin"
	"github.com/aula-dev/aula/internal/api"
	"github.com/aula-dev/aula/internal/auth"
	"github.com/aula-dev/aula/internal/config"
	"github.com/aula-dev/aula/internal/handoff"
	"github.com/aula-dev/aula/internal/localstore"
	"github.com/aula-dev/aula/internal/log"
	"github.com/aula-dev/aula/internal/qbank"
	"github.com/aula-dev/aula/internal/student"
	"github.com/aula-dev/aula/internal/tui"
	"github.com/aula-dev/aula/internal/tui/app"
)

var version = "dev" // set via ldflags at build time

var rootCmd = &cobra.Command{
	Use:   "aula",
	Short: "Terminal client for the Aula learning platform",
	Long: `Aula is a terminal client for the Aula learning platform.
Students manage their profile and course enrollment; teachers author
questions and assemble exams and practices; super-users administer
platform accounts.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is provided, launch TUI if TTY, show help otherwise
		if !tui.IsTTY() {
			return cmd.Help()
		}

		cfg, svcs, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		return tui.Run(app.New(cfg, svcs))
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap builds the full service graph every command runs against:
// config, local store, event log, API client, session, and the domain
// services. The returned cleanup closes the local store.
func bootstrap() (*config.Config, tui.Services, func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, tui.Services{}, nil, fmt.Errorf("cli: resolving home directory: %w", err)
	}

	cfg, err := config.Read(home)
	if err != nil {
		return nil, tui.Services{}, nil, err
	}

	local, err := localstore.Open(cfg.DataDir)
	if err != nil {
		return nil, tui.Services{}, nil, err
	}

	logger, err := log.NewLogger(cfg.DataDir)
	if err != nil {
		local.Close()
		return nil, tui.Services{}, nil, err
	}

	client := api.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, func() string {
		tok, _, _ := local.Get(localstore.KeyAuthToken)
		return tok
	})

	session, err := auth.NewSession(client, local, logger)
	if err != nil {
		local.Close()
		return nil, tui.Services{}, nil, err
	}

	svcs := tui.Services{
		Session:    session,
		Students:   student.NewService(client),
		QBank:      qbank.NewService(client),
		Activities: activity.NewService(client),
		Admin:      admin.NewService(client, session),
		Handoff:    handoff.NewStore(local),
	}
	cleanup := func() { _ = local.Close() }
	return cfg, svcs, cleanup, nil
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(statusCmd)
}
