package protocol

import (
	"context"
	"net/url"
)

// List is the wire shape of a shopping list.
type List struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []ListItem `json:"items"`
}

// ListItem is the wire shape of a list entry.
type ListItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Checked  bool   `json:"checked"`
	Note     string `json:"note,omitempty"`
	Quantity string `json:"quantity,omitempty"`
	Category string `json:"category,omitempty"`
}

// ItemFields carries the writable fields of a list item.
type ItemFields struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Note     string `json:"note,omitempty"`
	Category string `json:"category,omitempty"`
}

func listPath(listID string) string {
	return "/v1/lists/" + url.PathEscape(listID)
}

func itemPath(listID, itemID string) string {
	return listPath(listID) + "/items/" + url.PathEscape(itemID)
}

// Lists fetches every shopping list with its items.
func (c *Client) Lists(ctx context.Context) ([]List, error) {
	var out []List
	if err := c.getJSON(ctx, "/v1/lists", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByID fetches one list.
func (c *Client) ListByID(ctx context.Context, listID string) (List, error) {
	var out List
	if err := c.getJSON(ctx, listPath(listID), &out); err != nil {
		return List{}, err
	}
	return out, nil
}

// ListByName fetches a list by its display name.
func (c *Client) ListByName(ctx context.Context, name string) (List, error) {
	var out List
	if err := c.getJSON(ctx, "/v1/lists/by-name?name="+url.QueryEscape(name), &out); err != nil {
		return List{}, err
	}
	return out, nil
}

// CreateList creates an empty named list.
func (c *Client) CreateList(ctx context.Context, name string) (List, error) {
	in := struct {
		Name string `json:"name"`
	}{Name: name}
	var out List
	if err := c.post(ctx, "/v1/lists", in, &out); err != nil {
		return List{}, err
	}
	return out, nil
}

// RenameList changes a list's display name.
func (c *Client) RenameList(ctx context.Context, listID, newName string) error {
	in := struct {
		Name string `json:"name"`
	}{Name: newName}
	return c.post(ctx, listPath(listID)+"/rename", in, nil)
}

// DeleteList removes a list and everything on it.
func (c *Client) DeleteList(ctx context.Context, listID string) error {
	return c.delete(ctx, listPath(listID))
}

// AddItem appends an item to a list.
func (c *Client) AddItem(ctx context.Context, listID string, fields ItemFields) (ListItem, error) {
	var out ListItem
	if err := c.post(ctx, listPath(listID)+"/items", fields, &out); err != nil {
		return ListItem{}, err
	}
	return out, nil
}

// UpdateItem rewrites an item's fields.
func (c *Client) UpdateItem(ctx context.Context, listID, itemID string, fields ItemFields) error {
	return c.post(ctx, itemPath(listID, itemID)+"/update", fields, nil)
}

// DeleteItem removes one item.
func (c *Client) DeleteItem(ctx context.Context, listID, itemID string) error {
	return c.delete(ctx, itemPath(listID, itemID))
}

// CrossOffItem marks an item as checked.
func (c *Client) CrossOffItem(ctx context.Context, listID, itemID string) error {
	return c.post(ctx, itemPath(listID, itemID)+"/cross-off", nil, nil)
}

// UncheckItem clears an item's checked flag.
func (c *Client) UncheckItem(ctx context.Context, listID, itemID string) error {
	return c.post(ctx, itemPath(listID, itemID)+"/uncheck", nil, nil)
}

// BulkDeleteItems removes several items in one call.
func (c *Client) BulkDeleteItems(ctx context.Context, listID string, itemIDs []string) error {
	in := struct {
		ItemIDs []string `json:"item_ids"`
	}{ItemIDs: itemIDs}
	return c.post(ctx, listPath(listID)+"/items/bulk-delete", in, nil)
}

// DeleteAllCrossedOffItems clears every checked item from a list.
func (c *Client) DeleteAllCrossedOffItems(ctx context.Context, listID string) error {
	return c.post(ctx, listPath(listID)+"/items/delete-crossed-off", nil, nil)
}
