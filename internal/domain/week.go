package domain

import (
	"errors"
	"time"
)

var (
	// ErrWeekNotFound indicates that the week is not found.
	ErrWeekNotFound = errors.New("week not found")
	// ErrWeekNameTaken indicates that a week with the given name already exists.
	ErrWeekNameTaken = errors.New("week name already exists")
	// ErrInvalidDateRange indicates that the start date is after the end date.
	ErrInvalidDateRange = errors.New("start date is after end date")
)

// Week groups ledger entries into a reporting period.
type Week struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// CreateWeekParams holds data needed for Week creation.
type CreateWeekParams struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
