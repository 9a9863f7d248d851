package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Inspect and manage shopping lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			lists, err := c.Lists(cmd.Context())
			if err != nil {
				return err
			}
			for _, l := range lists {
				fmt.Printf("%s  %s (%d items)\n", l.ID, l.Name, len(l.Items))
			}
			return nil
		},
	}
	cmd.AddCommand(listsShowCmd(), listsCreateCmd(), listsRenameCmd(), listsDeleteCmd())
	return cmd
}

// lists show <name>: print a list and its items.
func listsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a list and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			list, err := c.ListByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", list.Name, list.ID)
			for _, item := range list.Items {
				mark := " "
				if item.Checked {
					mark = "x"
				}
				line := fmt.Sprintf("[%s] %s", mark, item.Name)
				if item.Quantity != "" {
					line += " (" + item.Quantity + ")"
				}
				if item.Category != "" {
					line += "  #" + item.Category
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func listsCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			list, err := c.CreateList(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Created %s (%s)\n", list.Name, list.ID)
			return nil
		},
	}
}

func listsRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <list-id> <new-name>",
		Short: "Rename a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			return c.RenameList(cmd.Context(), args[0], args[1])
		},
	}
}

func listsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <list-id>",
		Short: "Delete a list and everything on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			return c.DeleteList(cmd.Context(), args[0])
		},
	}
}
