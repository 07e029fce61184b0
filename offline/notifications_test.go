package offline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildNotificationDefaults(t *testing.T) {
	n, err := BuildNotification([]byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, "RestaurantOS", n.Title)
	require.Equal(t, "New notification from RestaurantOS", n.Body)
	require.Equal(t, "restaurant-notification", n.Tag)
	require.False(t, n.RequireInteraction)
}

func TestBuildNotificationFullPayload(t *testing.T) {
	payload := []byte(`{
		"title": "Order ready",
		"body": "Table 4's order is ready to serve",
		"tag": "order-12",
		"requireInteraction": true,
		"actions": [
			{"action": "view", "title": "View order"},
			{"action": "dismiss", "title": "Dismiss"}
		],
		"data": {"url": "/kitchen"}
	}`)
	n, err := BuildNotification(payload)
	require.NoError(t, err)
	require.Equal(t, "Order ready", n.Title)
	require.Equal(t, "order-12", n.Tag)
	require.True(t, n.RequireInteraction)
	require.Len(t, n.Actions, 2)
	require.Equal(t, "/kitchen", n.Data.URL)
}

func TestBuildNotificationBadPayload(t *testing.T) {
	_, err := BuildNotification([]byte(`not json`))
	require.Error(t, err)
}

func TestClickTarget(t *testing.T) {
	withURL := Notification{Data: NotificationData{URL: "/kitchen"}}

	url, open := ClickTarget("view", withURL)
	require.True(t, open)
	require.Equal(t, "/kitchen", url)

	url, open = ClickTarget("view", Notification{})
	require.True(t, open)
	require.Equal(t, "/", url)

	_, open = ClickTarget("dismiss", withURL)
	require.False(t, open)

	url, open = ClickTarget("", withURL)
	require.True(t, open)
	require.Equal(t, "/", url)
}
