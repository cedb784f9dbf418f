package models

import "time"

// Visitor is one row of the visitors table. Name is a pointer because the
// column is nullable.
type Visitor struct {
	ID   int       `json:"id"`
	Name *string   `json:"name"`
	Date time.Time `json:"date"`
}
