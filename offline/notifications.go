package offline

import "encoding/json"

// NotificationAction is a button offered on a displayed notification
type NotificationAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
}

// Notification is what gets displayed for an incoming push message
type Notification struct {
	Title              string               `json:"title"`
	Body               string               `json:"body"`
	Tag                string               `json:"tag"`
	RequireInteraction bool                 `json:"requireInteraction"`
	Actions            []NotificationAction `json:"actions"`
	Data               NotificationData     `json:"data"`
}

// NotificationData carries the navigation target for a click
type NotificationData struct {
	URL string `json:"url"`
}

// BuildNotification parses a push message payload into a displayable
// notification, applying defaults for missing fields
func BuildNotification(payload []byte) (Notification, error) {
	var n Notification
	if err := json.Unmarshal(payload, &n); err != nil {
		return Notification{}, err
	}
	if n.Title == "" {
		n.Title = "RestaurantOS"
	}
	if n.Body == "" {
		n.Body = "New notification from RestaurantOS"
	}
	if n.Tag == "" {
		n.Tag = "restaurant-notification"
	}
	return n, nil
}

// ClickTarget resolves a notification click to the URL the application
// should open. The second return is false when nothing should open
// (an explicit dismiss).
func ClickTarget(action string, n Notification) (string, bool) {
	switch action {
	case "view":
		if n.Data.URL != "" {
			return n.Data.URL, true
		}
		return "/", true
	case "dismiss":
		return "", false
	default:
		return "/", true
	}
}
