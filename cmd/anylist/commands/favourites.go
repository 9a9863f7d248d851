package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func favouritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favourites",
		Short: "Manage starter-list favourites",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			favs, err := c.Favourites(cmd.Context())
			if err != nil {
				return err
			}
			for _, f := range favs {
				fmt.Printf("%s  %s (list %s)\n", f.ID, f.Name, f.ListID)
			}
			return nil
		},
	}
	cmd.AddCommand(favouritesAddCmd(), favouritesRemoveCmd(), favouritesToListCmd())
	return cmd
}

func favouritesAddCmd() *cobra.Command {
	var category, listID string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a favourite item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			if listID != "" {
				_, err = c.AddFavouriteToList(cmd.Context(), listID, args[0], category)
			} else {
				_, err = c.AddFavourite(cmd.Context(), args[0], category)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "item category")
	cmd.Flags().StringVar(&listID, "list", "", "starter list ID (default list when empty)")
	return cmd
}

func favouritesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <list-id> <item-id>",
		Short: "Remove a favourite from a starter list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			return c.RemoveFavourite(cmd.Context(), args[0], args[1])
		},
	}
}

// favourites to-list: copy a favourite onto a shopping list.
func favouritesToListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-list <favourites-list-id> <favourite-id> <shopping-list-id>",
		Short: "Copy a favourite onto a shopping list",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			item, err := c.AddFavouriteToShoppingList(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (%s)\n", item.Name, item.ID)
			return nil
		},
	}
}
