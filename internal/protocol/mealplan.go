package protocol

import (
	"context"
	"net/url"
)

// MealPlanEvent is the wire shape of a meal-plan calendar entry.
type MealPlanEvent struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Title    string `json:"title,omitempty"`
	RecipeID string `json:"recipe_id,omitempty"`
	LabelID  string `json:"label_id,omitempty"`
	Details  string `json:"details,omitempty"`
}

// ICalendarInfo is the wire shape of the calendar sync state.
type ICalendarInfo struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url,omitempty"`
	Token   string `json:"token,omitempty"`
}

// eventFields carries the writable fields of a meal-plan event.
type eventFields struct {
	Date     string `json:"date"`
	RecipeID string `json:"recipe_id,omitempty"`
	Title    string `json:"title,omitempty"`
	LabelID  string `json:"label_id,omitempty"`
}

func calendarPath(calendarID string) string {
	return "/v1/meal-plan/calendars/" + url.PathEscape(calendarID)
}

// MealPlanEvents fetches events between two YYYY-MM-DD dates, inclusive.
func (c *Client) MealPlanEvents(ctx context.Context, startDate, endDate string) ([]MealPlanEvent, error) {
	q := url.Values{"start": {startDate}, "end": {endDate}}
	var out []MealPlanEvent
	if err := c.getJSON(ctx, "/v1/meal-plan/events?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMealPlanEvent schedules a recipe or a free-form entry on a
// calendar date. recipeID, title and labelID are each optional.
func (c *Client) CreateMealPlanEvent(ctx context.Context, calendarID, date, recipeID, title, labelID string) (MealPlanEvent, error) {
	in := eventFields{Date: date, RecipeID: recipeID, Title: title, LabelID: labelID}
	var out MealPlanEvent
	if err := c.post(ctx, calendarPath(calendarID)+"/events", in, &out); err != nil {
		return MealPlanEvent{}, err
	}
	return out, nil
}

// UpdateMealPlanEvent rewrites an event's fields.
func (c *Client) UpdateMealPlanEvent(ctx context.Context, calendarID, eventID, date, recipeID, title, labelID string) error {
	in := eventFields{Date: date, RecipeID: recipeID, Title: title, LabelID: labelID}
	return c.post(ctx, calendarPath(calendarID)+"/events/"+url.PathEscape(eventID)+"/update", in, nil)
}

// DeleteMealPlanEvent removes an event from a calendar.
func (c *Client) DeleteMealPlanEvent(ctx context.Context, calendarID, eventID string) error {
	return c.delete(ctx, calendarPath(calendarID)+"/events/"+url.PathEscape(eventID))
}

// AddMealPlanIngredientsToList copies the ingredients of every planned
// recipe in the date range onto a shopping list.
func (c *Client) AddMealPlanIngredientsToList(ctx context.Context, listID, startDate, endDate string) error {
	in := struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}{Start: startDate, End: endDate}
	return c.post(ctx, listPath(listID)+"/add-meal-plan", in, nil)
}

// EnableICalendar turns on calendar sync and returns the feed info.
func (c *Client) EnableICalendar(ctx context.Context) (ICalendarInfo, error) {
	var out ICalendarInfo
	if err := c.post(ctx, "/v1/icalendar/enable", nil, &out); err != nil {
		return ICalendarInfo{}, err
	}
	return out, nil
}

// DisableICalendar turns off calendar sync.
func (c *Client) DisableICalendar(ctx context.Context) error {
	return c.post(ctx, "/v1/icalendar/disable", nil, nil)
}

// ICalendar fetches the current calendar sync state.
func (c *Client) ICalendar(ctx context.Context) (ICalendarInfo, error) {
	var out ICalendarInfo
	if err := c.getJSON(ctx, "/v1/icalendar", &out); err != nil {
		return ICalendarInfo{}, err
	}
	return out, nil
}
