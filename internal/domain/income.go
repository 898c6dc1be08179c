package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidAmount indicates an unparsable or non two-decimal amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates a zero or negative amount.
	ErrNegativeAmount = errors.New("amount must be positive")
	// ErrIncomeNotFound indicates that the income entry is not found.
	ErrIncomeNotFound = errors.New("income not found")
)

// Income is an immutable ledger entry adding money to a cash account.
type Income struct {
	ID      int64     `json:"id"`
	CashID  int32     `json:"cash_id"`
	WeekID  int32     `json:"week_id"`
	Date    time.Time `json:"date"`
	Amount  string    `json:"amount"` // must be positive
	Source  string    `json:"source"`
	Visible bool      `json:"visible"`
}

// CreateIncomeParams is the input data for the income transaction.
type CreateIncomeParams struct {
	CashID int32     `json:"cash_id"`
	WeekID int32     `json:"week_id"`
	Date   time.Time `json:"date"`
	Amount string    `json:"amount"`
	Source string    `json:"source"`
}

// IncomeTxResult is the result of the income transaction.
type IncomeTxResult struct {
	Income Income      `json:"income"`
	Cash   CashAccount `json:"cash"`
}
