package model

import "time"

// SubscriptionSource records which part of the site a subscription came from.
type SubscriptionSource string

const (
	SourceHomepage SubscriptionSource = "homepage"
	SourceGallery  SubscriptionSource = "gallery"
	SourceContact  SubscriptionSource = "contact"
	SourceFooter   SubscriptionSource = "footer"
)

// Valid reports whether s is one of the known subscription sources.
func (s SubscriptionSource) Valid() bool {
	switch s {
	case SourceHomepage, SourceGallery, SourceContact, SourceFooter:
		return true
	}
	return false
}

// NewsletterSubscriber is one newsletter list entry. Email is the natural
// key: at most one record exists per address, and re-subscribing reactivates
// the existing record instead of creating a duplicate.
type NewsletterSubscriber struct {
	ID             string             `json:"id"`
	Email          string             `json:"email"`
	Source         SubscriptionSource `json:"source"`
	Active         bool               `json:"active"`
	SubscribedAt   time.Time          `json:"subscribed_at"`
	UnsubscribedAt *time.Time         `json:"unsubscribed_at,omitempty"`
}
