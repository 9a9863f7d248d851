package protocol

import (
	"context"
	"net/url"
)

// Category is the wire shape of a list category.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	SortIndex int    `json:"sort_index"`
}

// CategoryGroup is the wire shape of a category group.
type CategoryGroup struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

func categoryPath(listID, categoryID string) string {
	return listPath(listID) + "/categories/" + url.PathEscape(categoryID)
}

// CreateCategory adds a category to a list under the given group.
func (c *Client) CreateCategory(ctx context.Context, listID, categoryGroupID, name string) (Category, error) {
	in := struct {
		GroupID string `json:"group_id"`
		Name    string `json:"name"`
	}{GroupID: categoryGroupID, Name: name}
	var out Category
	if err := c.post(ctx, listPath(listID)+"/categories", in, &out); err != nil {
		return Category{}, err
	}
	return out, nil
}

// RenameCategory changes a category's display name.
func (c *Client) RenameCategory(ctx context.Context, listID, categoryGroupID, categoryID, newName string) error {
	in := struct {
		GroupID string `json:"group_id"`
		Name    string `json:"name"`
	}{GroupID: categoryGroupID, Name: newName}
	return c.post(ctx, categoryPath(listID, categoryID)+"/rename", in, nil)
}

// DeleteCategory removes a category from a list.
func (c *Client) DeleteCategory(ctx context.Context, listID, categoryID string) error {
	return c.delete(ctx, categoryPath(listID, categoryID))
}
