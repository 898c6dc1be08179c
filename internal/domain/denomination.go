package domain

import "errors"

var (
	// ErrDenominationNotFound indicates that the denomination record is not found.
	ErrDenominationNotFound = errors.New("denomination not found")
	// ErrDenominationExists indicates that the cash account already tracks the given face value.
	ErrDenominationExists = errors.New("denomination already exists for this cash account")
	// ErrNegativeQuantity indicates a negative denomination quantity.
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// Denomination is the count of physical bills or coins of one face value
// held in one cash account's drawer. The pair (CashID, Value) is unique.
type Denomination struct {
	ID       int32  `json:"id"`
	CashID   int32  `json:"cash_id"`
	Value    string `json:"denomination_value"`
	Quantity string `json:"quantity"`
}

// CreateDenominationParams holds data needed for Denomination creation.
type CreateDenominationParams struct {
	CashID   int32  `json:"cash_id"`
	Value    string `json:"denomination_value"`
	Quantity string `json:"quantity"`
}

// UpdateDenominationParams holds the partial update for a denomination.
// Nil fields keep their stored values.
type UpdateDenominationParams struct {
	ID       int32
	Value    *string
	Quantity *string
}
