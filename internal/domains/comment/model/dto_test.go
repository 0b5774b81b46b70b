package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmitRequest() SubmitCommentRequest {
	return SubmitCommentRequest{
		PostSlug:   "my-first-post",
		GuestName:  "Alice",
		GuestEmail: "alice@example.com",
		Content:    "Great read, thank you.",
	}
}

func TestSubmitCommentRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SubmitCommentRequest)
		wantErr string
	}{
		{
			name:   "valid request",
			mutate: func(r *SubmitCommentRequest) {},
		},
		{
			name:   "valid without email",
			mutate: func(r *SubmitCommentRequest) { r.GuestEmail = "" },
		},
		{
			name:    "missing slug",
			mutate:  func(r *SubmitCommentRequest) { r.PostSlug = "" },
			wantErr: "Post slug is required",
		},
		{
			name:    "whitespace-only slug",
			mutate:  func(r *SubmitCommentRequest) { r.PostSlug = "   " },
			wantErr: "Post slug is required",
		},
		{
			name:    "missing name",
			mutate:  func(r *SubmitCommentRequest) { r.GuestName = "" },
			wantErr: "Name is required",
		},
		{
			name:    "name too long",
			mutate:  func(r *SubmitCommentRequest) { r.GuestName = strings.Repeat("a", 101) },
			wantErr: "Name must be 100 characters or less",
		},
		{
			name:   "name at limit",
			mutate: func(r *SubmitCommentRequest) { r.GuestName = strings.Repeat("a", 100) },
		},
		{
			name:    "missing content",
			mutate:  func(r *SubmitCommentRequest) { r.Content = "" },
			wantErr: "Comment content is required",
		},
		{
			name:    "content too long",
			mutate:  func(r *SubmitCommentRequest) { r.Content = strings.Repeat("x", 2001) },
			wantErr: "Comment must be 2000 characters or less",
		},
		{
			name:   "content at limit",
			mutate: func(r *SubmitCommentRequest) { r.Content = strings.Repeat("x", 2000) },
		},
		{
			name:    "http in name",
			mutate:  func(r *SubmitCommentRequest) { r.GuestName = "visit http://spam.example" },
			wantErr: "URLs are not allowed in names",
		},
		{
			name:    "www. in name",
			mutate:  func(r *SubmitCommentRequest) { r.GuestName = "www.spam.example" },
			wantErr: "URLs are not allowed in names",
		},
		{
			// The heuristic is case-sensitive; uppercase variants pass.
			name:   "uppercase HTTP in name passes",
			mutate: func(r *SubmitCommentRequest) { r.GuestName = "HTTP enthusiast" },
		},
		{
			name:    "invalid email",
			mutate:  func(r *SubmitCommentRequest) { r.GuestEmail = "not-an-email" },
			wantErr: "Please provide a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmitRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantErr, validationErr.Message)
		})
	}
}

func TestSubmitCommentRequest_Validate_Normalizes(t *testing.T) {
	req := SubmitCommentRequest{
		PostSlug:   "  my-first-post  ",
		GuestName:  "  Alice  ",
		GuestEmail: "  Alice@Example.COM  ",
		Content:    "  hello  ",
	}

	require.NoError(t, req.Validate())

	assert.Equal(t, "my-first-post", req.PostSlug)
	assert.Equal(t, "Alice", req.GuestName)
	assert.Equal(t, "alice@example.com", req.GuestEmail)
	assert.Equal(t, "hello", req.Content)
}

func TestSubmitCommentRequest_Validate_LengthCheckedAfterTrim(t *testing.T) {
	// 100 runes of name plus surrounding whitespace is still valid.
	req := validSubmitRequest()
	req.GuestName = "  " + strings.Repeat("a", 100) + "  "

	assert.NoError(t, req.Validate())
}

func TestSubmitCommentRequest_Validate_FirstFailureWins(t *testing.T) {
	// Everything is wrong; the slug error is reported first.
	req := SubmitCommentRequest{}

	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Post slug is required", err.Error())
}
