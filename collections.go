package anylist

import "context"

// RecipeCollections fetches every recipe collection.
func (c *Client) RecipeCollections(ctx context.Context) ([]RecipeCollection, error) {
	ws, err := c.eng.RecipeCollections(ctx)
	if err != nil {
		return nil, err
	}
	collections := make([]RecipeCollection, len(ws))
	for i, w := range ws {
		collections[i] = RecipeCollection(w)
	}
	return collections, nil
}

// CreateRecipeCollection creates an empty named collection.
func (c *Client) CreateRecipeCollection(ctx context.Context, name string) (RecipeCollection, error) {
	w, err := c.eng.CreateRecipeCollection(ctx, name)
	if err != nil {
		return RecipeCollection{}, err
	}
	return RecipeCollection(w), nil
}

// DeleteRecipeCollection removes a collection; the recipes in it are
// kept.
func (c *Client) DeleteRecipeCollection(ctx context.Context, collectionID string) error {
	return c.eng.DeleteRecipeCollection(ctx, collectionID)
}

// AddRecipeToCollection links a recipe into a collection.
func (c *Client) AddRecipeToCollection(ctx context.Context, collectionID, recipeID string) error {
	return c.eng.AddRecipeToCollection(ctx, collectionID, recipeID)
}

// RemoveRecipeFromCollection unlinks a recipe from a collection.
func (c *Client) RemoveRecipeFromCollection(ctx context.Context, collectionID, recipeID string) error {
	return c.eng.RemoveRecipeFromCollection(ctx, collectionID, recipeID)
}
