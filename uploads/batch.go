// Package uploads implements the candidate resume upload lifecycle: a single
// multipart submission creates a batch, the batch is processed
// asynchronously, and a status endpoint is polled until the batch reaches a
// terminal state.
package uploads

import "time"

// Status is the state of an upload batch or of one of its items
type Status string

const (
	StatusPending             Status = "PENDING"
	StatusProcessing          Status = "PROCESSING"
	StatusCompleted           Status = "COMPLETED"
	StatusCompletedWithErrors Status = "COMPLETED_WITH_ERRORS"
	StatusFailed              Status = "FAILED"
)

// Terminal reports whether no further transition can occur from this status.
// Batch terminality is decided solely by the batch-level status committed by
// the backend; it is never inferred from the items.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCompletedWithErrors, StatusFailed:
		return true
	default:
		return false
	}
}

// Item is one uploaded file inside a batch
type Item struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	Status       Status `json:"status"`
	CandidateID  string `json:"candidateId,omitempty"`
	Email        string `json:"email,omitempty"`
	ErrorCode    string `json:"errorCode,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// Batch is an upload submission and its processing state
type Batch struct {
	UploadID  string    `json:"uploadId"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	Items     []Item    `json:"items"`
}
