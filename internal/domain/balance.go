package domain

import (
	"errors"
	"time"
)

// ErrConflictingFilter indicates that both a week and a date range were given.
var ErrConflictingFilter = errors.New("week and date range filters are mutually exclusive")

// BalanceFilter restricts ledger sums to a week or to a date range.
//
// WeekID and the date range are mutually exclusive; the zero value means
// the whole ledger history.
type BalanceFilter struct {
	WeekID    *int32
	StartDate *time.Time
	EndDate   *time.Time
}

// ByWeek reports whether the filter restricts sums to a single week.
func (f BalanceFilter) ByWeek() bool {
	return f.WeekID != nil
}

// ByDateRange reports whether the filter restricts sums to a date range.
func (f BalanceFilter) ByDateRange() bool {
	return f.StartDate != nil || f.EndDate != nil
}

// Validate rejects filters that mix the week and date range dimensions.
func (f BalanceFilter) Validate() error {
	if f.ByWeek() && f.ByDateRange() {
		return ErrConflictingFilter
	}

	return nil
}

// GroupedSum is one row of a grouped ledger aggregation: the total amount
// for one category (income source or outcome category) of one cash account.
type GroupedSum struct {
	CashID   int32
	Category string
	Total    string
}

// BalanceTotals holds the summed sides of a cash account's ledger scope.
type BalanceTotals struct {
	Income  string `json:"income"`
	Outcome string `json:"outcome"`
	Net     string `json:"net"`
}

// BalanceBreakdown holds per-category sums for both ledger sides.
type BalanceBreakdown struct {
	IncomesBySource    map[string]string `json:"incomes_by_category"`
	OutcomesByCategory map[string]string `json:"outcomes_by_category"`
}

// BalanceSnapshot is a transient, computed view of one cash account's
// balance for a given filter scope. It is never persisted.
//
// Drift compares the stored all-time balance against the calculated
// balance of the requested scope; it is an audit figure only when the
// filter is unrestricted.
type BalanceSnapshot struct {
	CashID            int32            `json:"cash_id"`
	CashName          string           `json:"cash_name"`
	ActualAmount      string           `json:"cash_actual_amount"`
	CalculatedBalance string           `json:"calculated_balance"`
	Drift             string           `json:"drift"`
	Totals            BalanceTotals    `json:"totals"`
	Breakdown         BalanceBreakdown `json:"breakdown"`
}
