package models

import "errors"

// Domain-specific errors for decoding board data
var (
	// ErrUnknownStatus indicates a status value outside todo/in_progress/done
	ErrUnknownStatus = errors.New("unknown task status")

	// ErrUnknownResourceType indicates a resource whose type is neither file nor link
	ErrUnknownResourceType = errors.New("unknown resource type")
)
