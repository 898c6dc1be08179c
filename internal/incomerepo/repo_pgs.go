// Package incomerepo manages repository layer of income ledger entries.
package incomerepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/leodev8821/economicControl-nv-sub002/internal/cashrepo"
	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/dbpkg"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/errorspkg"
)

// RepoPGS facilitates income repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns income RepoPGS bound to an in-flight transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

// NewRepoPGS returns income RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO
    income (cash_id, week_id, date, amount, source)
VALUES
    ($1, $2, $3, $4, $5)
RETURNING id, cash_id, week_id, date, amount, source, visible
`

// Create inserts the income row and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateIncomeParams) (domain.Income, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.CashID, arg.WeekID, arg.Date, arg.Amount, arg.Source)

	var i domain.Income

	err := row.Scan(&i.ID, &i.CashID, &i.WeekID, &i.Date, &i.Amount, &i.Source, &i.Visible)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "income_cash_id_fkey":
				return i, domain.ErrCashNotFound
			case "income_week_id_fkey":
				return i, domain.ErrWeekNotFound
			case "income_amount_check":
				return i, domain.ErrNegativeAmount
			}
		}

		return i, errorspkg.ErrInternal
	}

	return i, nil
}

// CreateTx inserts the income row and adds its amount to the cash account's
// stored balance within a single transaction.
func (r *RepoPGS) CreateTx(ctx context.Context, arg domain.CreateIncomeParams) (domain.IncomeTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.IncomeTxResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			l.Error().Err(err).Send()
		}
	}()

	incomeRepo := NewTxRepoPGS(tx)
	cashRepo := cashrepo.NewRepoPGS(tx)

	result.Income, err = incomeRepo.Create(ctx, arg)
	if err != nil {
		return result, err
	}

	result.Cash, err = cashRepo.AddBalance(ctx, arg.Amount, arg.CashID)
	if err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}

const getQuery = `
SELECT id, cash_id, week_id, date, amount, source, visible
FROM income
WHERE id = $1
`

// Get returns the income with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Income, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var i domain.Income

	err := row.Scan(&i.ID, &i.CashID, &i.WeekID, &i.Date, &i.Amount, &i.Source, &i.Visible)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return i, domain.ErrIncomeNotFound
		}

		return i, errorspkg.ErrInternal
	}

	return i, nil
}

const listQuery = `
SELECT id, cash_id, week_id, date, amount, source, visible
FROM income
WHERE (visible OR $1)
  AND ($2::int IS NULL OR cash_id = $2)
  AND ($3::int IS NULL OR week_id = $3)
ORDER BY id
`

// List returns income rows, optionally restricted to a cash account or a
// week. Hidden rows are excluded unless includeHidden is set.
func (r *RepoPGS) List(ctx context.Context, cashID, weekID *int32, includeHidden bool) ([]domain.Income, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, includeHidden, cashID, weekID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Income{}

	for rows.Next() {
		var i domain.Income
		if err := rows.Scan(&i.ID, &i.CashID, &i.WeekID, &i.Date, &i.Amount, &i.Source, &i.Visible); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, i)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const hideQuery = `
UPDATE income
SET visible = FALSE
WHERE id = $1
RETURNING id, cash_id, week_id, date, amount, source, visible
`

// Hide flags the income row as hidden from default listings and sums.
func (r *RepoPGS) Hide(ctx context.Context, id int64) (domain.Income, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, hideQuery, id)

	var i domain.Income

	err := row.Scan(&i.ID, &i.CashID, &i.WeekID, &i.Date, &i.Amount, &i.Source, &i.Visible)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return i, domain.ErrIncomeNotFound
		}

		return i, errorspkg.ErrInternal
	}

	return i, nil
}

const sumByCashQuery = `
SELECT COALESCE(SUM(amount), 0)
FROM income
WHERE cash_id = $1 AND (visible OR $2)
`

// SumByCash returns the full-history income total of one cash account.
func (r *RepoPGS) SumByCash(ctx context.Context, cashID int32, includeHidden bool) (string, error) {
	l := zerolog.Ctx(ctx)

	var total string

	err := r.db.QueryRowContext(ctx, sumByCashQuery, cashID, includeHidden).Scan(&total)
	if err != nil {
		l.Error().Err(err).Send()
		return "", errorspkg.ErrInternal
	}

	return total, nil
}

const sumGroupedQuery = `
SELECT cash_id, source, SUM(amount)
FROM income
WHERE (visible OR $1)
  AND ($2::int IS NULL OR week_id = $2)
  AND ($3::date IS NULL OR date >= $3)
  AND ($4::date IS NULL OR date <= $4)
GROUP BY cash_id, source
ORDER BY cash_id, source
`

// SumGrouped returns income totals grouped by (cash_id, source) for the
// given filter scope. One query covers all cash accounts.
func (r *RepoPGS) SumGrouped(ctx context.Context, f domain.BalanceFilter, includeHidden bool) ([]domain.GroupedSum, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, sumGroupedQuery, includeHidden, f.WeekID, f.StartDate, f.EndDate)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.GroupedSum{}

	for rows.Next() {
		var s domain.GroupedSum
		if err := rows.Scan(&s.CashID, &s.Category, &s.Total); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, s)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
