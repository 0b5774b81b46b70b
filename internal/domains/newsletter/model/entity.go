package model

import "time"

// Subscriber is a newsletter recipient. Unsubscribing deactivates the
// row instead of deleting it so a later resubscribe reactivates the
// original record.
type Subscriber struct {
	Email          string     `json:"email"`
	IsActive       bool       `json:"isActive"`
	SubscribedAt   time.Time  `json:"subscribedAt"`
	UnsubscribedAt *time.Time `json:"unsubscribedAt,omitempty"`
}

// Stats summarizes the subscriber base for the admin dashboard.
type Stats struct {
	TotalSubscribers  int `json:"totalSubscribers"`
	ActiveSubscribers int `json:"activeSubscribers"`
	Unsubscribed      int `json:"unsubscribed"`
}
