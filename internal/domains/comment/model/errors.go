package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeCommentNotFound = "CMT001"
	ErrCodePostNotFound    = "CMT002"
	ErrCodeRateLimited     = "CMT003"
	ErrCodeInvalidInput    = "CMT004"
)

// Sentinel errors. Approve/reject deliberately return the same not-found
// error whether the id never existed or was already moderated.
var (
	ErrCommentNotFound = errors.New("comment not found or already moderated")
	ErrPostNotFound    = errors.New("post not found")
	ErrRateLimited     = errors.New("rate limit exceeded")
)

// CommentError is the coded error surfaced at the handler boundary.
type CommentError struct {
	Code    string
	Message string
	Err     error
}

func (e *CommentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CommentError) Unwrap() error {
	return e.Err
}

// ValidationError carries the user-facing rejection reason for malformed
// guest input. Each rule failure produces a distinct message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func NewCommentNotFoundError() *CommentError {
	return &CommentError{
		Code:    ErrCodeCommentNotFound,
		Message: "Comment not found or already moderated",
		Err:     ErrCommentNotFound,
	}
}

func NewPostNotFoundError() *CommentError {
	return &CommentError{
		Code:    ErrCodePostNotFound,
		Message: "Post not found",
		Err:     ErrPostNotFound,
	}
}

func NewRateLimitedError() *CommentError {
	return &CommentError{
		Code:    ErrCodeRateLimited,
		Message: "You're commenting too frequently. Please wait a moment.",
		Err:     ErrRateLimited,
	}
}
