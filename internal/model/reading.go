package model

import (
	"encoding/json"
	"time"
)

// Reading represents a blood-pressure reading in the database.
type Reading struct {
	ID        int64
	UserID    int64
	Systolic  int
	Diastolic int
	CreatedAt time.Time
}

// ReadingRequest represents a submit or update request body. The measurement
// fields are decoded as json.Number so that missing, fractional, or otherwise
// non-integer values can be rejected explicitly instead of being coerced.
type ReadingRequest struct {
	Systolic  json.Number `json:"systolic"`
	Diastolic json.Number `json:"diastolic"`
}

// ReadingResponse represents a single reading in a history response.
type ReadingResponse struct {
	ID        int64     `json:"id"`
	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResponse represents the history listing, newest insertion first.
type HistoryResponse struct {
	History []ReadingResponse `json:"history"`
}
