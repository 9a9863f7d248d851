package anylist

import "context"

// Lists fetches every shopping list with its items.
func (c *Client) Lists(ctx context.Context) ([]List, error) {
	ws, err := c.eng.Lists(ctx)
	if err != nil {
		return nil, err
	}
	lists := make([]List, len(ws))
	for i, w := range ws {
		lists[i] = toList(w)
	}
	return lists, nil
}

// ListByID fetches one list.
func (c *Client) ListByID(ctx context.Context, listID string) (List, error) {
	w, err := c.eng.ListByID(ctx, listID)
	if err != nil {
		return List{}, err
	}
	return toList(w), nil
}

// ListByName fetches a list by its display name.
func (c *Client) ListByName(ctx context.Context, name string) (List, error) {
	w, err := c.eng.ListByName(ctx, name)
	if err != nil {
		return List{}, err
	}
	return toList(w), nil
}

// CreateList creates an empty named list.
func (c *Client) CreateList(ctx context.Context, name string) (List, error) {
	w, err := c.eng.CreateList(ctx, name)
	if err != nil {
		return List{}, err
	}
	return toList(w), nil
}

// RenameList changes a list's display name.
func (c *Client) RenameList(ctx context.Context, listID, newName string) error {
	return c.eng.RenameList(ctx, listID, newName)
}

// DeleteList removes a list and everything on it.
func (c *Client) DeleteList(ctx context.Context, listID string) error {
	return c.eng.DeleteList(ctx, listID)
}
