// Package domain provides defenitions of all entities.
package domain

import "errors"

var (
	// ErrCashNotFound indicates that the cash account is not found.
	ErrCashNotFound = errors.New("cash account not found")
	// ErrCashNameTaken indicates that a cash account with the given name already exists.
	ErrCashNameTaken = errors.New("cash account name already exists")
)

// CashAccount holds a named pool of money with its stored running balance.
//
// ActualAmount is authoritative: it is changed only by the ledger write
// path and by the administrative resync.
type CashAccount struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	ActualAmount string `json:"actual_amount"`
}

// CreateCashParams holds data needed for CashAccount creation.
type CreateCashParams struct {
	Name          string `json:"name"`
	InitialAmount string `json:"initial_amount"`
}
