package domain

import "time"

// File is a journal entry tracking one upload through extraction.
type File struct {
	Name         string     `db:"name"          json:"name"`
	OriginalName string     `db:"original_name" json:"original_name"`
	Status       Status     `db:"status"        json:"status"`
	ErrorMessage string     `db:"error_message" json:"error_message,omitempty"`
	ProcessedAt  *time.Time `db:"processed_at"  json:"processed_at,omitempty"`
}
