package anylist

import "context"

// EnableICalendar turns on meal-plan calendar sync and returns the feed
// info, including the subscription URL.
func (c *Client) EnableICalendar(ctx context.Context) (ICalendarInfo, error) {
	w, err := c.eng.EnableICalendar(ctx)
	if err != nil {
		return ICalendarInfo{}, err
	}
	return ICalendarInfo(w), nil
}

// DisableICalendar turns off meal-plan calendar sync.
func (c *Client) DisableICalendar(ctx context.Context) error {
	return c.eng.DisableICalendar(ctx)
}

// ICalendarURL returns the feed URL, or the empty string when sync is
// disabled.
func (c *Client) ICalendarURL(ctx context.Context) (string, error) {
	w, err := c.eng.ICalendar(ctx)
	if err != nil {
		return "", err
	}
	if !w.Enabled {
		return "", nil
	}
	return w.URL, nil
}
