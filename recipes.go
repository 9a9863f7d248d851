package anylist

import (
	"context"

	"anylist/internal/protocol"
)

// Recipes fetches every recipe.
func (c *Client) Recipes(ctx context.Context) ([]Recipe, error) {
	ws, err := c.eng.Recipes(ctx)
	if err != nil {
		return nil, err
	}
	recipes := make([]Recipe, len(ws))
	for i, w := range ws {
		recipes[i] = toRecipe(w)
	}
	return recipes, nil
}

// RecipeByID fetches one recipe.
func (c *Client) RecipeByID(ctx context.Context, recipeID string) (Recipe, error) {
	w, err := c.eng.RecipeByID(ctx, recipeID)
	if err != nil {
		return Recipe{}, err
	}
	return toRecipe(w), nil
}

// RecipeByName fetches a recipe by its display name.
func (c *Client) RecipeByName(ctx context.Context, name string) (Recipe, error) {
	w, err := c.eng.RecipeByName(ctx, name)
	if err != nil {
		return Recipe{}, err
	}
	return toRecipe(w), nil
}

// CreateRecipe stores a new recipe built from the draft and returns it.
func (c *Client) CreateRecipe(ctx context.Context, draft RecipeDraft) (Recipe, error) {
	w, err := c.eng.SaveRecipe(ctx, draftToWire("", draft.Name, draft))
	if err != nil {
		return Recipe{}, err
	}
	return toRecipe(w), nil
}

// UpdateRecipe rewrites an existing recipe from the draft. The stored
// name is kept; a recipe cannot be renamed. Ingredients and preparation
// steps are replaced wholesale, while the optional metadata fields only
// change when the draft sets them.
func (c *Client) UpdateRecipe(ctx context.Context, recipeID string, draft RecipeDraft) (Recipe, error) {
	existing, err := c.eng.RecipeByID(ctx, recipeID)
	if err != nil {
		return Recipe{}, err
	}

	next := draftToWire(existing.ID, existing.Name, draft)
	if next.Note == "" {
		next.Note = existing.Note
	}
	if next.SourceName == "" {
		next.SourceName = existing.SourceName
	}
	if next.SourceURL == "" {
		next.SourceURL = existing.SourceURL
	}
	if next.Servings == "" {
		next.Servings = existing.Servings
	}
	if next.PrepTime == 0 {
		next.PrepTime = existing.PrepTime
	}
	if next.CookTime == 0 {
		next.CookTime = existing.CookTime
	}
	if next.Rating == 0 {
		next.Rating = existing.Rating
	}
	if next.NutritionalInfo == "" {
		next.NutritionalInfo = existing.NutritionalInfo
	}
	if next.PhotoID == "" {
		next.PhotoID = existing.PhotoID
	}

	w, err := c.eng.SaveRecipe(ctx, next)
	if err != nil {
		return Recipe{}, err
	}
	return toRecipe(w), nil
}

// DeleteRecipe removes a recipe.
func (c *Client) DeleteRecipe(ctx context.Context, recipeID string) error {
	return c.eng.DeleteRecipe(ctx, recipeID)
}

// AddRecipeToList copies a recipe's ingredients onto a shopping list.
// scaleFactor multiplies quantities; pass 0 for unscaled.
func (c *Client) AddRecipeToList(ctx context.Context, recipeID, listID string, scaleFactor float64) error {
	return c.eng.AddRecipeToList(ctx, recipeID, listID, scaleFactor)
}

// UploadPhoto sends image data for use as a recipe photo and returns the
// photo ID to put in a RecipeDraft.
func (c *Client) UploadPhoto(ctx context.Context, data []byte, filename string) (string, error) {
	return c.eng.UploadPhoto(ctx, data, filename)
}

// draftToWire builds the wire recipe for a save, with the given identity.
func draftToWire(id, name string, draft RecipeDraft) protocol.Recipe {
	ingredients := make([]protocol.Ingredient, len(draft.Ingredients))
	for i, ing := range draft.Ingredients {
		ingredients[i] = protocol.Ingredient(ing)
	}
	return protocol.Recipe{
		ID:               id,
		Name:             name,
		Ingredients:      ingredients,
		PreparationSteps: draft.PreparationSteps,
		Note:             draft.Note,
		SourceName:       draft.SourceName,
		SourceURL:        draft.SourceURL,
		Servings:         draft.Servings,
		PrepTime:         draft.PrepTime,
		CookTime:         draft.CookTime,
		Rating:           draft.Rating,
		NutritionalInfo:  draft.NutritionalInfo,
		PhotoID:          draft.PhotoID,
	}
}
