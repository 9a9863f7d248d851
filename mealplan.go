package anylist

import "context"

// EventDetails carries the optional fields of a meal-plan event. An
// event usually has either a RecipeID or a Title.
type EventDetails struct {
	RecipeID string
	Title    string
	LabelID  string
}

// MealPlanEvents fetches events between two YYYY-MM-DD dates, inclusive.
func (c *Client) MealPlanEvents(ctx context.Context, startDate, endDate string) ([]MealPlanEvent, error) {
	ws, err := c.eng.MealPlanEvents(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	events := make([]MealPlanEvent, len(ws))
	for i, w := range ws {
		events[i] = MealPlanEvent(w)
	}
	return events, nil
}

// CreateMealPlanEvent schedules an entry on a calendar date.
func (c *Client) CreateMealPlanEvent(ctx context.Context, calendarID, date string, details EventDetails) (MealPlanEvent, error) {
	w, err := c.eng.CreateMealPlanEvent(ctx, calendarID, date, details.RecipeID, details.Title, details.LabelID)
	if err != nil {
		return MealPlanEvent{}, err
	}
	return MealPlanEvent(w), nil
}

// UpdateMealPlanEvent rewrites an event's date and details.
func (c *Client) UpdateMealPlanEvent(ctx context.Context, calendarID, eventID, date string, details EventDetails) error {
	return c.eng.UpdateMealPlanEvent(ctx, calendarID, eventID, date, details.RecipeID, details.Title, details.LabelID)
}

// DeleteMealPlanEvent removes an event from a calendar.
func (c *Client) DeleteMealPlanEvent(ctx context.Context, calendarID, eventID string) error {
	return c.eng.DeleteMealPlanEvent(ctx, calendarID, eventID)
}

// AddMealPlanIngredientsToList copies the ingredients of every recipe
// planned in the date range onto a shopping list.
func (c *Client) AddMealPlanIngredientsToList(ctx context.Context, listID, startDate, endDate string) error {
	return c.eng.AddMealPlanIngredientsToList(ctx, listID, startDate, endDate)
}
