package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"anylist"
)

// login <email>: exchange credentials for tokens and store them.
func loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in and store the session tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if password == "" {
				password = os.Getenv("ANYLIST_PASSWORD")
			}
			if password == "" {
				return fmt.Errorf("password required (--password or ANYLIST_PASSWORD)")
			}

			c, err := anylist.Login(cmd.Context(), args[0], password, wire.ClientOptions()...)
			if err != nil {
				return err
			}
			if err := wire.Tokens.Save(passphrase, c.Tokens()); err != nil {
				return err
			}
			fmt.Printf("Signed in as %s\n", c.UserID())
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "account password (or set ANYLIST_PASSWORD)")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Tokens.Clear(); err != nil {
				return err
			}
			fmt.Println("Signed out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			fmt.Printf("User ID: %s\n", c.UserID())
			if c.IsPremiumUser() {
				fmt.Println("Premium:  yes")
			} else {
				fmt.Println("Premium:  no")
			}
			return nil
		},
	}
}
