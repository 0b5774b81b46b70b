package model

import (
	"time"

	"github.com/google/uuid"
)

// ModerationState is derived from the persisted approved/rejected flags.
type ModerationState string

const (
	StatePending  ModerationState = "pending"
	StateApproved ModerationState = "approved"
	StateRejected ModerationState = "rejected"
)

// Comment is a guest comment on a blog post. Content and identity fields are
// immutable after submission; only the moderation flags ever change, and only
// through the store's approve/reject operations.
type Comment struct {
	ID      uuid.UUID `json:"id"`
	PostID  uuid.UUID `json:"post_id"`
	Content string    `json:"content"`

	GuestName  string  `json:"guest_name"`
	GuestEmail *string `json:"guest_email,omitempty"`

	// Captured at submission for rate limiting and admin display only.
	SubmitterIP *string `json:"submitter_ip,omitempty"`

	IsApproved  bool       `json:"is_approved"`
	IsRejected  bool       `json:"is_rejected"`
	CreatedAt   time.Time  `json:"created_at"`
	ModeratedAt *time.Time `json:"moderated_at,omitempty"`
}

func (c *Comment) State() ModerationState {
	switch {
	case c.IsApproved:
		return StateApproved
	case c.IsRejected:
		return StateRejected
	default:
		return StatePending
	}
}

// PublicComment is the shape exposed on the public read path. No submitter
// address, no email.
type PublicComment struct {
	ID        uuid.UUID `json:"id"`
	GuestName string    `json:"guestName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// PendingComment is a pending entry annotated with post title/slug for the
// moderation queue.
type PendingComment struct {
	ID          uuid.UUID `json:"id"`
	GuestName   string    `json:"guestName"`
	GuestEmail  *string   `json:"guestEmail,omitempty"`
	Content     string    `json:"content"`
	SubmitterIP *string   `json:"submitterIp,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	PostTitle   string    `json:"postTitle"`
	PostSlug    string    `json:"postSlug"`
}

// AdminComment is the full audit view, every state included.
type AdminComment struct {
	ID          uuid.UUID  `json:"id"`
	GuestName   string     `json:"guestName"`
	GuestEmail  *string    `json:"guestEmail,omitempty"`
	Content     string     `json:"content"`
	SubmitterIP *string    `json:"submitterIp,omitempty"`
	IsApproved  bool       `json:"isApproved"`
	IsRejected  bool       `json:"isRejected"`
	CreatedAt   time.Time  `json:"createdAt"`
	ModeratedAt *time.Time `json:"moderatedAt,omitempty"`
	PostTitle   string     `json:"postTitle"`
	PostSlug    string     `json:"postSlug"`
}

// ApprovalResult is returned by the store's approve operation so the service
// can enqueue the notification email without a second round-trip.
type ApprovalResult struct {
	GuestName  string
	GuestEmail *string
	Content    string
	PostTitle  string
	PostSlug   string
}
