package anylist

import "context"

// CreateCategory adds a category to a list under the given group.
func (c *Client) CreateCategory(ctx context.Context, listID, categoryGroupID, name string) (Category, error) {
	w, err := c.eng.CreateCategory(ctx, listID, categoryGroupID, name)
	if err != nil {
		return Category{}, err
	}
	return Category(w), nil
}

// RenameCategory changes a category's display name.
func (c *Client) RenameCategory(ctx context.Context, listID, categoryGroupID, categoryID, newName string) error {
	return c.eng.RenameCategory(ctx, listID, categoryGroupID, categoryID, newName)
}

// DeleteCategory removes a category from a list.
func (c *Client) DeleteCategory(ctx context.Context, listID, categoryID string) error {
	return c.eng.DeleteCategory(ctx, listID, categoryID)
}
