package protocol

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// Ingredient is the wire shape of a recipe line.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Note     string `json:"note,omitempty"`
}

// Recipe is the wire shape of a recipe. ID is empty when creating.
type Recipe struct {
	ID               string       `json:"id,omitempty"`
	Name             string       `json:"name"`
	Ingredients      []Ingredient `json:"ingredients"`
	PreparationSteps []string     `json:"preparation_steps"`
	Note             string       `json:"note,omitempty"`
	SourceName       string       `json:"source_name,omitempty"`
	SourceURL        string       `json:"source_url,omitempty"`
	Servings         string       `json:"servings,omitempty"`
	PrepTime         int          `json:"prep_time,omitempty"`
	CookTime         int          `json:"cook_time,omitempty"`
	Rating           int          `json:"rating,omitempty"`
	NutritionalInfo  string       `json:"nutritional_info,omitempty"`
	PhotoID          string       `json:"photo_id,omitempty"`
}

func recipePath(recipeID string) string {
	return "/v1/recipes/" + url.PathEscape(recipeID)
}

// Recipes fetches every recipe.
func (c *Client) Recipes(ctx context.Context) ([]Recipe, error) {
	var out []Recipe
	if err := c.getJSON(ctx, "/v1/recipes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecipeByID fetches one recipe.
func (c *Client) RecipeByID(ctx context.Context, recipeID string) (Recipe, error) {
	var out Recipe
	if err := c.getJSON(ctx, recipePath(recipeID), &out); err != nil {
		return Recipe{}, err
	}
	return out, nil
}

// RecipeByName fetches a recipe by its display name.
func (c *Client) RecipeByName(ctx context.Context, name string) (Recipe, error) {
	var out Recipe
	if err := c.getJSON(ctx, "/v1/recipes/by-name?name="+url.QueryEscape(name), &out); err != nil {
		return Recipe{}, err
	}
	return out, nil
}

// SaveRecipe creates the recipe when r.ID is empty, otherwise rewrites
// the stored recipe with that ID. The saved recipe is returned.
func (c *Client) SaveRecipe(ctx context.Context, r Recipe) (Recipe, error) {
	path := "/v1/recipes"
	if r.ID != "" {
		path = recipePath(r.ID)
	}
	var out Recipe
	if err := c.post(ctx, path, r, &out); err != nil {
		return Recipe{}, err
	}
	return out, nil
}

// DeleteRecipe removes a recipe.
func (c *Client) DeleteRecipe(ctx context.Context, recipeID string) error {
	return c.delete(ctx, recipePath(recipeID))
}

// AddRecipeToList copies a recipe's ingredients onto a shopping list.
// scaleFactor multiplies quantities; zero means unscaled.
func (c *Client) AddRecipeToList(ctx context.Context, recipeID, listID string, scaleFactor float64) error {
	in := struct {
		ListID      string  `json:"list_id"`
		ScaleFactor float64 `json:"scale_factor,omitempty"`
	}{ListID: listID, ScaleFactor: scaleFactor}
	return c.post(ctx, recipePath(recipeID)+"/add-to-list", in, nil)
}

// UploadPhoto sends image data for use as a recipe photo and returns the
// assigned photo ID.
func (c *Client) UploadPhoto(ctx context.Context, data []byte, filename string) (string, error) {
	buf := new(bytes.Buffer)
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile("photo", filename)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	const path = "/v1/photos"
	if err := c.freshen(ctx); err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.accessToken())
	req.Header.Set(clientIDHeader, c.clientID)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", statusError(http.MethodPost, path, resp)
	}
	var out struct {
		PhotoID string `json:"photo_id"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return "", err
	}
	return out.PhotoID, nil
}

// RecipeCollection is the wire shape of a recipe grouping.
type RecipeCollection struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	RecipeIDs []string `json:"recipe_ids"`
}

func collectionPath(collectionID string) string {
	return "/v1/recipe-collections/" + url.PathEscape(collectionID)
}

// RecipeCollections fetches every recipe collection.
func (c *Client) RecipeCollections(ctx context.Context) ([]RecipeCollection, error) {
	var out []RecipeCollection
	if err := c.getJSON(ctx, "/v1/recipe-collections", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRecipeCollection creates an empty named collection.
func (c *Client) CreateRecipeCollection(ctx context.Context, name string) (RecipeCollection, error) {
	in := struct {
		Name string `json:"name"`
	}{Name: name}
	var out RecipeCollection
	if err := c.post(ctx, "/v1/recipe-collections", in, &out); err != nil {
		return RecipeCollection{}, err
	}
	return out, nil
}

// DeleteRecipeCollection removes a collection (recipes are kept).
func (c *Client) DeleteRecipeCollection(ctx context.Context, collectionID string) error {
	return c.delete(ctx, collectionPath(collectionID))
}

// AddRecipeToCollection links a recipe into a collection.
func (c *Client) AddRecipeToCollection(ctx context.Context, collectionID, recipeID string) error {
	in := struct {
		RecipeID string `json:"recipe_id"`
	}{RecipeID: recipeID}
	return c.post(ctx, collectionPath(collectionID)+"/add", in, nil)
}

// RemoveRecipeFromCollection unlinks a recipe from a collection.
func (c *Client) RemoveRecipeFromCollection(ctx context.Context, collectionID, recipeID string) error {
	in := struct {
		RecipeID string `json:"recipe_id"`
	}{RecipeID: recipeID}
	return c.post(ctx, collectionPath(collectionID)+"/remove", in, nil)
}
