package domain

import (
	"errors"
	"time"
)

// ErrOutcomeNotFound indicates that the outcome entry is not found.
var ErrOutcomeNotFound = errors.New("outcome not found")

// Outcome is an immutable ledger entry removing money from a cash account.
type Outcome struct {
	ID       int64     `json:"id"`
	CashID   int32     `json:"cash_id"`
	WeekID   int32     `json:"week_id"`
	Date     time.Time `json:"date"`
	Amount   string    `json:"amount"` // must be positive
	Category string    `json:"category"`
	Visible  bool      `json:"visible"`
}

// CreateOutcomeParams is the input data for the outcome transaction.
type CreateOutcomeParams struct {
	CashID   int32     `json:"cash_id"`
	WeekID   int32     `json:"week_id"`
	Date     time.Time `json:"date"`
	Amount   string    `json:"amount"`
	Category string    `json:"category"`
}

// OutcomeTxResult is the result of the outcome transaction.
type OutcomeTxResult struct {
	Outcome Outcome     `json:"outcome"`
	Cash    CashAccount `json:"cash"`
}
