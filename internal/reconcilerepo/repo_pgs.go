// Package reconcilerepo manages the transactional resync of stored cash balances.
package reconcilerepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/leodev8821/economicControl-nv-sub002/internal/cashrepo"
	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
	"github.com/leodev8821/economicControl-nv-sub002/internal/incomerepo"
	"github.com/leodev8821/economicControl-nv-sub002/internal/outcomerepo"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/errorspkg"
)

// RepoPGS owns the resync transaction.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns reconcile RepoPGS.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{conn: db}
}

// Resync recomputes every cash account's stored balance from its complete
// visible ledger history and overwrites actual_amount with the result.
//
// The whole read-compute-write sequence runs inside one serializable
// transaction: either every account is rewritten or none is. A concurrent
// ledger write committing mid-resync would otherwise let a stale sum be
// persisted. Returns the number of accounts rewritten.
func (r *RepoPGS) Resync(ctx context.Context) (int, error) {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			l.Error().Err(err).Send()
		}
	}()

	cashRepo := cashrepo.NewRepoPGS(tx)
	incomeRepo := incomerepo.NewTxRepoPGS(tx)
	outcomeRepo := outcomerepo.NewTxRepoPGS(tx)

	accounts, err := cashRepo.List(ctx)
	if err != nil {
		return 0, err
	}

	for _, account := range accounts {
		realBalance, err := realBalance(ctx, incomeRepo, outcomeRepo, account.ID)
		if err != nil {
			return 0, err
		}

		if _, err := cashRepo.SetBalance(ctx, realBalance, account.ID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return len(accounts), nil
}

func realBalance(ctx context.Context, incomes *incomerepo.RepoPGS, outcomes *outcomerepo.RepoPGS, cashID int32) (string, error) {
	const includeHidden = false

	totalIncome, err := incomes.SumByCash(ctx, cashID, includeHidden)
	if err != nil {
		return "", err
	}

	totalOutcome, err := outcomes.SumByCash(ctx, cashID, includeHidden)
	if err != nil {
		return "", err
	}

	incomeDec, err := decimal.NewFromString(totalIncome)
	if err != nil {
		return "", domain.ErrInvalidAmount
	}

	outcomeDec, err := decimal.NewFromString(totalOutcome)
	if err != nil {
		return "", domain.ErrInvalidAmount
	}

	return incomeDec.Sub(outcomeDec).StringFixed(2), nil
}
