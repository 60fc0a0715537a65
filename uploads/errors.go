package uploads

import (
	"fmt"
	"time"
)

// ValidationError means the caller's input was rejected before any network
// call was attempted
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UploadError means the submission endpoint returned a non-success response.
// Message carries the server's response body when one was readable.
type UploadError struct {
	StatusCode int
	Message    string
}

func (e *UploadError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upload failed with status %d", e.StatusCode)
	}
	return e.Message
}

// StatusError means the status endpoint returned a non-success response
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status fetch failed with status %d", e.StatusCode)
	}
	return e.Message
}

// PollTimeoutError means the batch did not reach a terminal state within the
// polling window
type PollTimeoutError struct {
	UploadID string
	Elapsed  time.Duration
}

func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("upload %s did not reach a terminal state within %s", e.UploadID, e.Elapsed)
}
