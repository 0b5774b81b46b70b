package model

import (
	"time"

	"github.com/google/uuid"
)

// Post is a published or draft blog entry.
type Post struct {
	ID      uuid.UUID `json:"id"`
	Slug    string    `json:"slug"`
	Title   string    `json:"title"`
	Excerpt string    `json:"excerpt"`
	Content string    `json:"content"`

	BannerImage *string  `json:"bannerImage,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Tags        []string `json:"tags"`

	// Derived from content length at publish time, in minutes.
	ReadingTime int `json:"readingTime"`

	IsPublished bool `json:"isPublished"`
	IsDraft     bool `json:"isDraft"`

	// Engagement counters, incremented atomically in the store.
	Views     int `json:"views"`
	Resonates int `json:"resonates"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// TagCount pairs a tag with the number of published posts carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
