package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"anylist"
)

func itemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage items on a list",
	}
	cmd.AddCommand(
		itemsAddCmd(), itemsUpdateCmd(), itemsCheckCmd(), itemsUncheckCmd(),
		itemsDeleteCmd(), itemsClearCheckedCmd(),
	)
	return cmd
}

func itemDetailFlags(cmd *cobra.Command, details *anylist.ItemDetails) {
	cmd.Flags().StringVar(&details.Quantity, "quantity", "", "item quantity, e.g. \"2 lbs\"")
	cmd.Flags().StringVar(&details.Note, "note", "", "item note")
	cmd.Flags().StringVar(&details.Category, "category", "", "item category")
}

func itemsAddCmd() *cobra.Command {
	var details anylist.ItemDetails

	cmd := &cobra.Command{
		Use:   "add <list-id> <name>",
		Short: "Add an item to a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			item, err := c.AddItemWithDetails(cmd.Context(), args[0], args[1], details)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (%s)\n", item.Name, item.ID)
			return nil
		},
	}
	itemDetailFlags(cmd, &details)
	return cmd
}

func itemsUpdateCmd() *cobra.Command {
	var details anylist.ItemDetails

	cmd := &cobra.Command{
		Use:   "update <list-id> <item-id> <name>",
		Short: "Rewrite an item's name and details",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			return c.UpdateItem(cmd.Context(), args[0], args[1], args[2], details)
		},
	}
	itemDetailFlags(cmd, &details)
	return cmd
}

func itemsCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <list-id> <item-id>",
		Short: "Cross off an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			return c.CrossOffItem(cmd.Context(), args[0], args[1])
		},
	}
}

func itemsUncheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uncheck <list-id> <item-id>",
		Short: "Clear an item's checked flag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			return c.UncheckItem(cmd.Context(), args[0], args[1])
		},
	}
}

func itemsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <list-id> <item-id>...",
		Short: "Delete one or more items",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			if len(args) == 2 {
				return c.DeleteItem(cmd.Context(), args[0], args[1])
			}
			return c.BulkDeleteItems(cmd.Context(), args[0], args[1:])
		},
	}
}

func itemsClearCheckedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-checked <list-id>",
		Short: "Delete every crossed-off item from a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			return c.DeleteAllCrossedOffItems(cmd.Context(), args[0])
		},
	}
}
