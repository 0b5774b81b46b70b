package shared

// Asynq task types. Namespaced by domain like "comment:approved_email".
const (
	TypeSendCommentApprovedEmail = "comment:send_approved_email"
	TypeResetRateLimitWindows    = "comment:reset_rate_limit_windows"
	TypeSendWelcomeEmail         = "newsletter:send_welcome_email"
)

// Queue names with their relative priority (configured in cmd/worker).
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)

// CommentApprovedPayload carries everything the worker needs to compose the
// "your comment was approved" email without another store round-trip.
type CommentApprovedPayload struct {
	Email     string `json:"email"`
	GuestName string `json:"guestName"`
	Content   string `json:"content"`
	PostTitle string `json:"postTitle"`
	PostSlug  string `json:"postSlug"`
}

// WelcomeEmailPayload is enqueued after a successful newsletter subscribe.
type WelcomeEmailPayload struct {
	Email string `json:"email"`
}

// ResetRateLimitWindowsPayload is empty; the job scans for expired windows.
type ResetRateLimitWindowsPayload struct{}
