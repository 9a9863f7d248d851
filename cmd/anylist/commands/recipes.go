package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func recipesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Inspect recipes and send them to lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			recipes, err := c.Recipes(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range recipes {
				fmt.Printf("%s  %s\n", r.ID, r.Name)
			}
			return nil
		},
	}
	cmd.AddCommand(recipesShowCmd(), recipesDeleteCmd(), recipesToListCmd())
	return cmd
}

func recipesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <recipe-id>",
		Short: "Print a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			r, err := c.RecipeByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", r.Name, r.ID)
			if r.Servings != "" {
				fmt.Printf("Servings: %s\n", r.Servings)
			}
			if r.PrepTime > 0 {
				fmt.Printf("Prep: %d min\n", r.PrepTime)
			}
			if r.CookTime > 0 {
				fmt.Printf("Cook: %d min\n", r.CookTime)
			}
			fmt.Println("Ingredients:")
			for _, ing := range r.Ingredients {
				if ing.Quantity != "" {
					fmt.Printf("  %s %s\n", ing.Quantity, ing.Name)
				} else {
					fmt.Printf("  %s\n", ing.Name)
				}
			}
			if len(r.PreparationSteps) > 0 {
				fmt.Println("Steps:")
				for i, step := range r.PreparationSteps {
					fmt.Printf("  %d. %s\n", i+1, step)
				}
			}
			return nil
		},
	}
}

func recipesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <recipe-id>",
		Short: "Delete a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			return c.DeleteRecipe(cmd.Context(), args[0])
		},
	}
}

// recipes to-list <recipe-id> <list-id>: add the ingredients to a list.
func recipesToListCmd() *cobra.Command {
	var scale float64

	cmd := &cobra.Command{
		Use:   "to-list <recipe-id> <list-id>",
		Short: "Add a recipe's ingredients to a shopping list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			return c.AddRecipeToList(cmd.Context(), args[0], args[1], scale)
		},
	}
	cmd.Flags().Float64Var(&scale, "scale", 0, "scale factor for quantities (0 = unscaled)")
	return cmd
}
