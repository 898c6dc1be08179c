// Package outcomerepo manages repository layer of outcome ledger entries.
package outcomerepo

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

// RepoPGS facilitates outcome repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns outcome RepoPGS bound to an in-flight transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

// NewRepoPGS returns outcome RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO
    outcome (cash_id, week_id, date, amount, category)
VALUES
    ($1, $2, $3, $4, $5)
RETURNING id, cash_id, week_id, date, amount, category, visible
`

// Create inserts the outcome row and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateOutcomeParams) (domain.Outcome, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.CashID, arg.WeekID, arg.Date, arg.Amount, arg.Category)

	var o domain.Outcome

	err := row.Scan(&o.ID, &o.CashID, &o.WeekID, &o.Date, &o.Amount, &o.Category, &o.Visible)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "outcome_cash_id_fkey":
				return o, domain.ErrCashNotFound
			case "outcome_week_id_fkey":
				return o, domain.ErrWeekNotFound
			case "outcome_amount_check":
				return o, domain.ErrNegativeAmount
			}
		}

		return o, errorspkg.ErrInternal
	}

	return o, nil
}

// CreateTx inserts the outcome row and subtracts its amount from the cash
// account's stored balance within a single transaction.
func (r *RepoPGS) CreateTx(ctx context.Context, arg domain.CreateOutcomeParams) (domain.OutcomeTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.OutcomeTxResult

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

	outcomeRepo := NewTxRepoPGS(tx)
	cashRepo := cashrepo.NewRepoPGS(tx)

	result.Outcome, err = outcomeRepo.Create(ctx, arg)
	if err != nil {
		return result, err
	}

	result.Cash, err = cashRepo.AddBalance(ctx, "-"+arg.Amount, arg.CashID)
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
SELECT id, cash_id, week_id, date, amount, category, visible
FROM outcome
WHERE id = $1
`

// Get returns the outcome with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Outcome, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var o domain.Outcome

	err := row.Scan(&o.ID, &o.CashID, &o.WeekID, &o.Date, &o.Amount, &o.Category, &o.Visible)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return o, domain.ErrOutcomeNotFound
		}

		return o, errorspkg.ErrInternal
	}

	return o, nil
}

const listQuery = `
SELECT id, cash_id, week_id, date, amount, category, visible
FROM outcome
WHERE (visible OR $1)
  AND ($2::int IS NULL OR cash_id = $2)
  AND ($3::int IS NULL OR week_id = $3)
ORDER BY id
`

// List returns outcome rows, optionally restricted to a cash account or a
// week. Hidden rows are excluded unless includeHidden is set.
func (r *RepoPGS) List(ctx context.Context, cashID, weekID *int32, includeHidden bool) ([]domain.Outcome, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, includeHidden, cashID, weekID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Outcome{}

	for rows.Next() {
		var o domain.Outcome
		if err := rows.Scan(&o.ID, &o.CashID, &o.WeekID, &o.Date, &o.Amount, &o.Category, &o.Visible); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, o)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const hideQuery = `
UPDATE outcome
SET visible = FALSE
WHERE id = $1
RETURNING id, cash_id, week_id, date, amount, category, visible
`

// Hide flags the outcome row as hidden from default listings and sums.
func (r *RepoPGS) Hide(ctx context.Context, id int64) (domain.Outcome, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, hideQuery, id)

	var o domain.Outcome

	err := row.Scan(&o.ID, &o.CashID, &o.WeekID, &o.Date, &o.Amount, &o.Category, &o.Visible)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return o, domain.ErrOutcomeNotFound
		}

		return o, errorspkg.ErrInternal
	}

	return o, nil
}

const sumByCashQuery = `
SELECT COALESCE(SUM(amount), 0)
FROM outcome
WHERE cash_id = $1 AND (visible OR $2)
`

// SumByCash returns the full-history outcome total of one cash account.
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
SELECT cash_id, category, SUM(amount)
FROM outcome
WHERE (visible OR $1)
  AND ($2::int IS NULL OR week_id = $2)
  AND ($3::date IS NULL OR date >= $3)
  AND ($4::date IS NULL OR date <= $4)
GROUP BY cash_id, category
ORDER BY cash_id, category
`

// SumGrouped returns outcome totals grouped by (cash_id, category) for the
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
