package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// SubmitCommentRequest is the public submission payload.
type SubmitCommentRequest struct {
	PostSlug   string `json:"postSlug"`
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	Content    string `json:"content"`
}

// Validate applies the submission rules in order, first failure wins, and
// normalizes the fields in place (name/content trimmed, email lowercased).
//
// The URL check on the name is case-sensitive on purpose: it matches the
// long-observed production behavior, and silently widening it would change
// which submissions are accepted.
func (r *SubmitCommentRequest) Validate() error {
	r.PostSlug = strings.TrimSpace(r.PostSlug)
	r.GuestName = strings.TrimSpace(r.GuestName)
	r.GuestEmail = strings.ToLower(strings.TrimSpace(r.GuestEmail))
	r.Content = strings.TrimSpace(r.Content)

	if err := validation.Validate(r.PostSlug, validation.Required); err != nil {
		return NewValidationError("Post slug is required")
	}

	if err := validation.Validate(r.GuestName, validation.Required); err != nil {
		return NewValidationError("Name is required")
	}
	if err := validation.Validate(r.GuestName, validation.RuneLength(1, MaxNameLength)); err != nil {
		return NewValidationError("Name must be 100 characters or less")
	}

	if err := validation.Validate(r.Content, validation.Required); err != nil {
		return NewValidationError("Comment content is required")
	}
	if err := validation.Validate(r.Content, validation.RuneLength(1, MaxContentLength)); err != nil {
		return NewValidationError("Comment must be 2000 characters or less")
	}

	// Basic spam prevention - URLs in display names.
	if strings.Contains(r.GuestName, "http") || strings.Contains(r.GuestName, "www.") {
		return NewValidationError("URLs are not allowed in names")
	}

	if r.GuestEmail != "" {
		if err := validation.Validate(r.GuestEmail, is.Email); err != nil {
			return NewValidationError("Please provide a valid email address")
		}
	}

	return nil
}

// SubmitCommentResponse is returned to the guest on success.
type SubmitCommentResponse struct {
	CommentID uuid.UUID `json:"commentId"`
	Message   string    `json:"message"`
}

// ListCommentsResponse is the public read-path payload.
type ListCommentsResponse struct {
	Comments []PublicComment `json:"comments"`
	Count    int             `json:"count"`
}
