package anylist

import "context"

// Favourites fetches every favourite item across all starter lists.
func (c *Client) Favourites(ctx context.Context) ([]FavouriteItem, error) {
	ws, err := c.eng.Favourites(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]FavouriteItem, len(ws))
	for i, w := range ws {
		items[i] = FavouriteItem(w)
	}
	return items, nil
}

// FavouritesLists fetches every starter list.
func (c *Client) FavouritesLists(ctx context.Context) ([]FavouritesList, error) {
	ws, err := c.eng.FavouritesLists(ctx)
	if err != nil {
		return nil, err
	}
	lists := make([]FavouritesList, len(ws))
	for i, w := range ws {
		lists[i] = toFavouritesList(w)
	}
	return lists, nil
}

// FavouritesForList fetches the starter list tied to a shopping list.
func (c *Client) FavouritesForList(ctx context.Context, shoppingListID string) (FavouritesList, error) {
	w, err := c.eng.FavouritesForList(ctx, shoppingListID)
	if err != nil {
		return FavouritesList{}, err
	}
	return toFavouritesList(w), nil
}

// AddFavourite adds a favourite item to the default starter list.
// category may be empty.
func (c *Client) AddFavourite(ctx context.Context, name, category string) (FavouriteItem, error) {
	w, err := c.eng.AddFavourite(ctx, name, category)
	if err != nil {
		return FavouriteItem{}, err
	}
	return FavouriteItem(w), nil
}

// AddFavouriteToList adds a favourite item to a specific starter list.
func (c *Client) AddFavouriteToList(ctx context.Context, listID, name, category string) (FavouriteItem, error) {
	w, err := c.eng.AddFavouriteToList(ctx, listID, name, category)
	if err != nil {
		return FavouriteItem{}, err
	}
	return FavouriteItem(w), nil
}

// RemoveFavourite deletes a favourite item from a starter list.
func (c *Client) RemoveFavourite(ctx context.Context, listID, itemID string) error {
	return c.eng.RemoveFavourite(ctx, listID, itemID)
}

// AddFavouriteToShoppingList resolves a favourite from its starter list
// and copies it onto a shopping list, returning the created item. It
// fails with ErrFavouriteNotFound when the starter list has no item with
// favouriteID.
func (c *Client) AddFavouriteToShoppingList(ctx context.Context, favouriteListID, favouriteID, shoppingListID string) (ListItem, error) {
	favourites, err := c.eng.FavouritesForList(ctx, favouriteListID)
	if err != nil {
		return ListItem{}, err
	}

	for _, fav := range favourites.Items {
		if fav.ID != favouriteID {
			continue
		}
		w, err := c.eng.AddFavouriteToShoppingList(ctx, fav, shoppingListID)
		if err != nil {
			return ListItem{}, err
		}
		return ListItem(w), nil
	}
	return ListItem{}, ErrFavouriteNotFound
}
