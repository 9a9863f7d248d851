package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"anylist"
)

func mealplanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mealplan <start-date> <end-date>",
		Short: "Inspect and edit the meal-plan calendar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			events, err := c.MealPlanEvents(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			for _, e := range events {
				label := e.Title
				if label == "" && e.RecipeID != "" {
					label = "recipe " + e.RecipeID
				}
				fmt.Printf("%s  %s  %s\n", e.Date, e.ID, label)
			}
			return nil
		},
	}
	cmd.AddCommand(mealplanAddCmd(), mealplanDeleteCmd(), mealplanToListCmd())
	return cmd
}

func mealplanAddCmd() *cobra.Command {
	var details anylist.EventDetails

	cmd := &cobra.Command{
		Use:   "add <calendar-id> <date>",
		Short: "Schedule a recipe or note on a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if details.RecipeID == "" && details.Title == "" {
				return fmt.Errorf("either --recipe or --title is required")
			}
			c, err := client()
			if err != nil {
				return err
			}
			event, err := c.CreateMealPlanEvent(cmd.Context(), args[0], args[1], details)
			if err != nil {
				return err
			}
			fmt.Printf("Scheduled %s on %s\n", event.ID, event.Date)
			return nil
		},
	}
	cmd.Flags().StringVar(&details.RecipeID, "recipe", "", "recipe ID to schedule")
	cmd.Flags().StringVar(&details.Title, "title", "", "free-form title")
	cmd.Flags().StringVar(&details.LabelID, "label", "", "label ID")
	return cmd
}

func mealplanDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <calendar-id> <event-id>",
		Short: "Remove an event from the calendar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			return c.DeleteMealPlanEvent(cmd.Context(), args[0], args[1])
		},
	}
}

// mealplan to-list: shop for the planned recipes in a date range.
func mealplanToListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-list <list-id> <start-date> <end-date>",
		Short: "Add the planned recipes' ingredients to a list",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			return c.AddMealPlanIngredientsToList(cmd.Context(), args[0], args[1], args[2])
		},
	}
}
