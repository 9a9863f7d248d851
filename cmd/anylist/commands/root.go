package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"anylist"
	"anylist/internal/app"
	"anylist/internal/logging"
)

var (
	home       string
	passphrase string
	baseURL    string

	wire *app.Wire

	// active is the client built by the current command, tracked so the
	// root command can persist rotated tokens afterwards.
	active *anylist.Client
)

func Execute() error {
	root := &cobra.Command{
		Use:           "anylist",
		Short:         "Manage AnyList shopping lists, recipes and meal plans",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(home)
			if err != nil {
				return err
			}
			if baseURL != "" {
				cfg.BaseURL = baseURL
			}
			logger := logging.Init(cfg.LogLevel)

			wire, err = app.NewWire(cfg, logger)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if active == nil || passphrase == "" {
				return nil
			}
			// The engine may have refreshed mid-command; keep the stored
			// set current.
			return wire.Tokens.Save(passphrase, active.Tokens())
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.anylist)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the stored session")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "service base URL (for testing)")

	root.AddCommand(
		loginCmd(), logoutCmd(), whoamiCmd(),
		listsCmd(), itemsCmd(), recipesCmd(),
		favouritesCmd(), mealplanCmd(), icalendarCmd(),
	)
	return root.Execute()
}

// client restores the saved session for a subcommand.
func client() (*anylist.Client, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase required (-p)")
	}
	c, ok, err := wire.Restore(passphrase)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no saved session; run 'anylist login' first")
	}
	active = c
	return c, nil
}
