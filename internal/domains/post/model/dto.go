package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// PublishPostRequest is the admin payload for publishing a new post.
// The slug and reading time are derived server-side.
type PublishPostRequest struct {
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	BannerImage *string  `json:"bannerImage"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
}

func (r PublishPostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&r.Excerpt, validation.Required, validation.RuneLength(1, 500)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Tags, validation.Each(validation.RuneLength(1, 50))),
	)
}

// PublishPostResponse returns the derived fields the operator cares about.
type PublishPostResponse struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

// EngagementResponse is returned by the view/resonate counters.
type EngagementResponse struct {
	Views     *int `json:"views,omitempty"`
	Resonates *int `json:"resonates,omitempty"`
}
