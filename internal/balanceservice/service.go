// Package balanceservice computes per-cash-account balance snapshots.
package balanceservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/errorspkg"
)

// CashRepo provides cash account access needed by the balance service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package balanceservice
type CashRepo interface {
	List(ctx context.Context) ([]domain.CashAccount, error)
}

// LedgerRepo provides grouped ledger sums for one ledger side.
type LedgerRepo interface {
	SumGrouped(ctx context.Context, f domain.BalanceFilter, includeHidden bool) ([]domain.GroupedSum, error)
}

// Service facilitates balance aggregation logic.
type Service struct {
	cashRepo CashRepo
	incomes  LedgerRepo
	outcomes LedgerRepo
}

// New returns balance service struct to compute balance snapshots.
func New(cr CashRepo, incomes, outcomes LedgerRepo) *Service {
	return &Service{
		cashRepo: cr,
		incomes:  incomes,
		outcomes: outcomes,
	}
}

// Snapshots returns one balance snapshot per cash account for the given
// filter scope, in cash account id order. Accounts without matching ledger
// entries appear with zero totals and empty breakdowns. An empty slice with
// a nil error means no cash accounts are registered.
//
// The two grouped reads are independent; a ledger write landing between
// them can skew a snapshot slightly. Accepted as a reporting tolerance
// since nothing is mutated here.
func (s *Service) Snapshots(ctx context.Context, f domain.BalanceFilter) ([]domain.BalanceSnapshot, error) {
	l := zerolog.Ctx(ctx)

	if err := f.Validate(); err != nil {
		return nil, err
	}

	accounts, err := s.cashRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(accounts) == 0 {
		return []domain.BalanceSnapshot{}, nil
	}

	const includeHidden = false

	incomeSums, err := s.incomes.SumGrouped(ctx, f, includeHidden)
	if err != nil {
		return nil, err
	}

	outcomeSums, err := s.outcomes.SumGrouped(ctx, f, includeHidden)
	if err != nil {
		return nil, err
	}

	incomesByCash := partition(incomeSums)
	outcomesByCash := partition(outcomeSums)

	snapshots := make([]domain.BalanceSnapshot, 0, len(accounts))

	for _, account := range accounts {
		snapshot, err := fold(account, incomesByCash[account.ID], outcomesByCash[account.ID])
		if err != nil {
			l.Error().Err(err).Int32("cash_id", account.ID).Send()
			return nil, errorspkg.ErrInternal
		}

		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}

func partition(sums []domain.GroupedSum) map[int32][]domain.GroupedSum {
	byCash := make(map[int32][]domain.GroupedSum)
	for _, s := range sums {
		byCash[s.CashID] = append(byCash[s.CashID], s)
	}

	return byCash
}

func fold(account domain.CashAccount, incomes, outcomes []domain.GroupedSum) (domain.BalanceSnapshot, error) {
	incomesBySource := make(map[string]string, len(incomes))
	outcomesByCategory := make(map[string]string, len(outcomes))

	totalIncome := decimal.Zero

	for _, s := range incomes {
		d, err := decimal.NewFromString(s.Total)
		if err != nil {
			return domain.BalanceSnapshot{}, err
		}

		incomesBySource[s.Category] = d.StringFixed(2)
		totalIncome = totalIncome.Add(d)
	}

	totalOutcome := decimal.Zero

	for _, s := range outcomes {
		d, err := decimal.NewFromString(s.Total)
		if err != nil {
			return domain.BalanceSnapshot{}, err
		}

		outcomesByCategory[s.Category] = d.StringFixed(2)
		totalOutcome = totalOutcome.Add(d)
	}

	actual, err := decimal.NewFromString(account.ActualAmount)
	if err != nil {
		return domain.BalanceSnapshot{}, err
	}

	calculated := totalIncome.Sub(totalOutcome)

	// Drift always compares against the all-time stored balance, even
	// when the calculated side is filtered to a week or date range.
	drift := actual.Sub(calculated)

	return domain.BalanceSnapshot{
		CashID:            account.ID,
		CashName:          account.Name,
		ActualAmount:      actual.StringFixed(2),
		CalculatedBalance: calculated.StringFixed(2),
		Drift:             drift.StringFixed(2),
		Totals: domain.BalanceTotals{
			Income:  totalIncome.StringFixed(2),
			Outcome: totalOutcome.StringFixed(2),
			Net:     calculated.StringFixed(2),
		},
		Breakdown: domain.BalanceBreakdown{
			IncomesBySource:    incomesBySource,
			OutcomesByCategory: outcomesByCategory,
		},
	}, nil
}
