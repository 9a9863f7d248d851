package protocol

import (
	"context"
	"net/url"
)

// FavouriteItem is the wire shape of a starter-list entry.
type FavouriteItem struct {
	ID       string `json:"id"`
	ListID   string `json:"list_id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Details  string `json:"details,omitempty"`
	Category string `json:"category,omitempty"`
}

// FavouritesList is the wire shape of a starter list.
type FavouritesList struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Items          []FavouriteItem `json:"items"`
	ShoppingListID string          `json:"shopping_list_id,omitempty"`
}

func favouritesListPath(listID string) string {
	return "/v1/favourites/lists/" + url.PathEscape(listID)
}

// Favourites fetches every favourite item across all starter lists.
func (c *Client) Favourites(ctx context.Context) ([]FavouriteItem, error) {
	var out []FavouriteItem
	if err := c.getJSON(ctx, "/v1/favourites", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FavouritesLists fetches every starter list.
func (c *Client) FavouritesLists(ctx context.Context) ([]FavouritesList, error) {
	var out []FavouritesList
	if err := c.getJSON(ctx, "/v1/favourites/lists", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FavouritesForList fetches the starter list tied to a shopping list.
func (c *Client) FavouritesForList(ctx context.Context, shoppingListID string) (FavouritesList, error) {
	var out FavouritesList
	if err := c.getJSON(ctx, listPath(shoppingListID)+"/favourites", &out); err != nil {
		return FavouritesList{}, err
	}
	return out, nil
}

// AddFavourite adds a favourite item to the default starter list.
// category is optional.
func (c *Client) AddFavourite(ctx context.Context, name, category string) (FavouriteItem, error) {
	in := struct {
		Name     string `json:"name"`
		Category string `json:"category,omitempty"`
	}{Name: name, Category: category}
	var out FavouriteItem
	if err := c.post(ctx, "/v1/favourites", in, &out); err != nil {
		return FavouriteItem{}, err
	}
	return out, nil
}

// AddFavouriteToList adds a favourite item to a specific starter list.
func (c *Client) AddFavouriteToList(ctx context.Context, listID, name, category string) (FavouriteItem, error) {
	in := struct {
		Name     string `json:"name"`
		Category string `json:"category,omitempty"`
	}{Name: name, Category: category}
	var out FavouriteItem
	if err := c.post(ctx, favouritesListPath(listID)+"/items", in, &out); err != nil {
		return FavouriteItem{}, err
	}
	return out, nil
}

// RemoveFavourite deletes a favourite item from a starter list.
func (c *Client) RemoveFavourite(ctx context.Context, listID, itemID string) error {
	return c.delete(ctx, favouritesListPath(listID)+"/items/"+url.PathEscape(itemID))
}

// AddFavouriteToShoppingList copies a favourite onto a shopping list and
// returns the created list item.
func (c *Client) AddFavouriteToShoppingList(ctx context.Context, fav FavouriteItem, shoppingListID string) (ListItem, error) {
	var out ListItem
	if err := c.post(ctx, listPath(shoppingListID)+"/items/from-favourite", fav, &out); err != nil {
		return ListItem{}, err
	}
	return out, nil
}
