package models

import "time"

// NotificationType classifies what a notification is about.
type NotificationType string

const (
	NotificationTypeSpike  NotificationType = "spike"
	NotificationTypeBudget NotificationType = "budget"
	NotificationTypeDebt   NotificationType = "debt"
)

// Notification is a message surfaced to the user. RelatedID loosely
// references whichever record triggered it.
type Notification struct {
	Base
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	Date      int64            `json:"date"`
	RelatedID string           `json:"relatedId,omitempty"`
}

// NewNotification returns a complete Notification. Defaults: spike type,
// unread, dated now.
func NewNotification(n Notification) Notification {
	n.Base = newBase(n.ID)
	if n.Type == "" {
		n.Type = NotificationTypeSpike
	}
	if n.Date == 0 {
		n.Date = time.Now().UnixMilli()
	}
	return n
}
