package anylist

import (
	"context"

	"anylist/internal/protocol"
)

// ItemDetails carries the optional fields of a list item. Empty strings
// are left unset.
type ItemDetails struct {
	Quantity string
	Note     string
	Category string
}

// AddItem appends a bare named item to a list.
func (c *Client) AddItem(ctx context.Context, listID, name string) (ListItem, error) {
	return c.AddItemWithDetails(ctx, listID, name, ItemDetails{})
}

// AddItemWithDetails appends an item with quantity, note and category.
func (c *Client) AddItemWithDetails(ctx context.Context, listID, name string, details ItemDetails) (ListItem, error) {
	w, err := c.eng.AddItem(ctx, listID, protocol.ItemFields{
		Name:     name,
		Quantity: details.Quantity,
		Note:     details.Note,
		Category: details.Category,
	})
	if err != nil {
		return ListItem{}, err
	}
	return ListItem(w), nil
}

// UpdateItem rewrites an item's name and details.
func (c *Client) UpdateItem(ctx context.Context, listID, itemID, name string, details ItemDetails) error {
	return c.eng.UpdateItem(ctx, listID, itemID, protocol.ItemFields{
		Name:     name,
		Quantity: details.Quantity,
		Note:     details.Note,
		Category: details.Category,
	})
}

// DeleteItem removes one item from a list.
func (c *Client) DeleteItem(ctx context.Context, listID, itemID string) error {
	return c.eng.DeleteItem(ctx, listID, itemID)
}

// CrossOffItem marks an item as checked.
func (c *Client) CrossOffItem(ctx context.Context, listID, itemID string) error {
	return c.eng.CrossOffItem(ctx, listID, itemID)
}

// UncheckItem clears an item's checked flag.
func (c *Client) UncheckItem(ctx context.Context, listID, itemID string) error {
	return c.eng.UncheckItem(ctx, listID, itemID)
}

// BulkDeleteItems removes several items in one call.
func (c *Client) BulkDeleteItems(ctx context.Context, listID string, itemIDs []string) error {
	return c.eng.BulkDeleteItems(ctx, listID, itemIDs)
}

// DeleteAllCrossedOffItems clears every checked item from a list.
func (c *Client) DeleteAllCrossedOffItems(ctx context.Context, listID string) error {
	return c.eng.DeleteAllCrossedOffItems(ctx, listID)
}
