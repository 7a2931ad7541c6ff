// Package history records the outcome of past submissions. Only outcome
// metadata is stored; parsed documents live in view state and are never
// persisted.
package history

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Submission outcomes.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

var (
	ErrInvalidID      = errors.New("invalid record id")
	ErrRecordNotFound = errors.New("record not found")
)

// Record is one submission outcome.
type Record struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	FileType      string    `json:"file_type"`
	LoadingMethod string    `json:"loading_method"`
	ParsingOption string    `json:"parsing_option"`
	TotalPages    int       `json:"total_pages"`
	Outcome       string    `json:"outcome"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewRecord creates a record with a fresh UUID and the current timestamp.
func NewRecord(filename, fileType, loadingMethod, parsingOption string) *Record {
	return &Record{
		ID:            uuid.New().String(),
		Filename:      filename,
		FileType:      fileType,
		LoadingMethod: loadingMethod,
		ParsingOption: parsingOption,
		CreatedAt:     time.Now(),
	}
}

// Succeeded marks the record as a successful submission.
func (r *Record) Succeeded(totalPages int, message string) {
	r.Outcome = OutcomeSucceeded
	r.TotalPages = totalPages
	r.Message = message
}

// Failed marks the record as a failed submission.
func (r *Record) Failed(message string) {
	r.Outcome = OutcomeFailed
	r.Message = message
}

// Store persists submission records.
type Store interface {
	Save(record *Record) error
	Load(id string) (*Record, error)
	List(limit int) ([]*Record, error)
	Delete(id string) error
	Close() error
}
