package anylist

import "context"

// StoresForList fetches the stores configured on a list.
func (c *Client) StoresForList(ctx context.Context, listID string) ([]Store, error) {
	ws, err := c.eng.StoresForList(ctx, listID)
	if err != nil {
		return nil, err
	}
	stores := make([]Store, len(ws))
	for i, w := range ws {
		stores[i] = Store(w)
	}
	return stores, nil
}

// CreateStore adds a store to a list.
func (c *Client) CreateStore(ctx context.Context, listID, name string) (Store, error) {
	w, err := c.eng.CreateStore(ctx, listID, name)
	if err != nil {
		return Store{}, err
	}
	return Store(w), nil
}

// UpdateStore renames a store.
func (c *Client) UpdateStore(ctx context.Context, listID, storeID, newName string) error {
	return c.eng.UpdateStore(ctx, listID, storeID, newName)
}

// DeleteStore removes a store from a list.
func (c *Client) DeleteStore(ctx context.Context, listID, storeID string) error {
	return c.eng.DeleteStore(ctx, listID, storeID)
}

// StoreFiltersForList fetches the store filters configured on a list.
func (c *Client) StoreFiltersForList(ctx context.Context, listID string) ([]StoreFilter, error) {
	ws, err := c.eng.StoreFiltersForList(ctx, listID)
	if err != nil {
		return nil, err
	}
	filters := make([]StoreFilter, len(ws))
	for i, w := range ws {
		filters[i] = StoreFilter(w)
	}
	return filters, nil
}
