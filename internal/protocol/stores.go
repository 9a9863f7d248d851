package protocol

import (
	"context"
	"net/url"
)

// Store is the wire shape of a shop tied to a list.
type Store struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortIndex int    `json:"sort_index"`
}

// StoreFilter is the wire shape of a store-based list filter.
type StoreFilter struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	StoreIDs []string `json:"store_ids"`
}

func storePath(listID, storeID string) string {
	return listPath(listID) + "/stores/" + url.PathEscape(storeID)
}

// StoresForList fetches the stores configured on a list.
func (c *Client) StoresForList(ctx context.Context, listID string) ([]Store, error) {
	var out []Store
	if err := c.getJSON(ctx, listPath(listID)+"/stores", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateStore adds a store to a list.
func (c *Client) CreateStore(ctx context.Context, listID, name string) (Store, error) {
	in := struct {
		Name string `json:"name"`
	}{Name: name}
	var out Store
	if err := c.post(ctx, listPath(listID)+"/stores", in, &out); err != nil {
		return Store{}, err
	}
	return out, nil
}

// UpdateStore renames a store.
func (c *Client) UpdateStore(ctx context.Context, listID, storeID, newName string) error {
	in := struct {
		Name string `json:"name"`
	}{Name: newName}
	return c.post(ctx, storePath(listID, storeID)+"/rename", in, nil)
}

// DeleteStore removes a store from a list.
func (c *Client) DeleteStore(ctx context.Context, listID, storeID string) error {
	return c.delete(ctx, storePath(listID, storeID))
}

// StoreFiltersForList fetches the store filters configured on a list.
func (c *Client) StoreFiltersForList(ctx context.Context, listID string) ([]StoreFilter, error) {
	var out []StoreFilter
	if err := c.getJSON(ctx, listPath(listID)+"/store-filters", &out); err != nil {
		return nil, err
	}
	return out, nil
}
