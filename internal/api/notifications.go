package api

import (
	"context"
	"fmt"
)

// ListNotifications returns the caller's notifications, optionally scoped to
// a society, newest first
func (c *Client) ListNotifications(ctx context.Context, societyID string) ([]Notification, error) {
	var notifs []Notification
	path := "/notifications/" + query(map[string]string{"society_id": societyID})
	if err := c.get(ctx, path, &notifs); err != nil {
		return nil, err
	}
	return notifs, nil
}

// UnreadCount returns the caller's unread notification count
func (c *Client) UnreadCount(ctx context.Context, societyID string) (int, error) {
	var result struct {
		Count int `json:"count"`
	}
	path := "/notifications/unread-count" + query(map[string]string{"society_id": societyID})
	if err := c.get(ctx, path, &result); err != nil {
		return 0, err
	}
	return result.Count, nil
}

// MarkRead marks one notification as read
func (c *Client) MarkRead(ctx context.Context, notificationID string) error {
	return c.put(ctx, fmt.Sprintf("/notifications/%s/read", notificationID), nil, nil)
}

// MarkAllRead marks all of the caller's unread notifications as read and
// returns how many were updated
func (c *Client) MarkAllRead(ctx context.Context, societyID string) (int, error) {
	var result struct {
		Marked int `json:"marked"`
	}
	path := "/notifications/mark-all-read" + query(map[string]string{"society_id": societyID})
	if err := c.post(ctx, path, nil, &result); err != nil {
		return 0, err
	}
	return result.Marked, nil
}
