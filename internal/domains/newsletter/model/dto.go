package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type SubscribeRequest struct {
	Email string `json:"email"`
}

// Validate normalizes the email in place before checking it, so the
// stored value is always lowercase and trimmed.
func (r *SubscribeRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	return validation.Errors{
		"email": validation.Validate(r.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Please provide a valid email address"),
		),
	}.Filter()
}

type SubscribeResponse struct {
	Message string `json:"message"`
}

type UnsubscribeRequest struct {
	Email string `json:"email"`
}

func (r *UnsubscribeRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	return validation.Errors{
		"email": validation.Validate(r.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Please provide a valid email address"),
		),
	}.Filter()
}

// SendCampaignRequest asks for a published post to be mailed to every
// active subscriber.
type SendCampaignRequest struct {
	PostSlug string `json:"postSlug"`
}

func (r *SendCampaignRequest) Validate() error {
	r.PostSlug = strings.TrimSpace(r.PostSlug)

	return validation.Errors{
		"postSlug": validation.Validate(r.PostSlug,
			validation.Required.Error("Post slug is required"),
		),
	}.Filter()
}

// CampaignResult reports the fanout outcome. Failed addresses are
// listed so the operator can retry them by hand.
type CampaignResult struct {
	Total        int      `json:"total"`
	Successful   int      `json:"successful"`
	Failed       int      `json:"failed"`
	FailedEmails []string `json:"failedEmails,omitempty"`
}
