package model

const (
	// Content limits, mirrored by the comments table constraints.
	MaxNameLength    = 100
	MaxContentLength = 2000
)
