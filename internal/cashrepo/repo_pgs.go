// Package cashrepo manages repository layer of cash accounts.
package cashrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/dbpkg"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/errorspkg"
)

// RepoPGS facilitates cash account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns cash account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    cash_accounts (name, actual_amount)
VALUES
    ($1, $2)
RETURNING id, name, actual_amount
`

// Create creates the cash account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, name, initialAmount string) (domain.CashAccount, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, name, initialAmount)

	var c domain.CashAccount

	err := row.Scan(&c.ID, &c.Name, &c.ActualAmount)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "cash_accounts_name_key" {
				return c, domain.ErrCashNameTaken
			}
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const getQuery = `
SELECT id, name, actual_amount
FROM cash_accounts
WHERE id = $1
`

// Get returns the cash account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.CashAccount, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var c domain.CashAccount

	err := row.Scan(&c.ID, &c.Name, &c.ActualAmount)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return c, domain.ErrCashNotFound
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const listQuery = `
SELECT id, name, actual_amount
FROM cash_accounts
ORDER BY id
`

// List returns all cash accounts in id order.
func (r *RepoPGS) List(ctx context.Context) ([]domain.CashAccount, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.CashAccount{}

	for rows.Next() {
		var c domain.CashAccount
		if err := rows.Scan(&c.ID, &c.Name, &c.ActualAmount); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, c)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateNameQuery = `
UPDATE cash_accounts
SET name = $1
WHERE id = $2
RETURNING id, name, actual_amount
`

// UpdateName renames the cash account and returns the changed account.
func (r *RepoPGS) UpdateName(ctx context.Context, id int32, name string) (domain.CashAccount, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateNameQuery, name, id)

	var c domain.CashAccount

	err := row.Scan(&c.ID, &c.Name, &c.ActualAmount)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return c, domain.ErrCashNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "cash_accounts_name_key" {
				return c, domain.ErrCashNameTaken
			}
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const addBalanceQuery = `
UPDATE cash_accounts
SET actual_amount = actual_amount + $1
WHERE id = $2
RETURNING id, name, actual_amount
`

// AddBalance changes the stored balance by the given signed amount and
// returns the changed account. Used only by the ledger write path.
func (r *RepoPGS) AddBalance(ctx context.Context, amount string, id int32) (domain.CashAccount, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, addBalanceQuery, amount, id)

	var c domain.CashAccount

	err := row.Scan(&c.ID, &c.Name, &c.ActualAmount)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return c, domain.ErrCashNotFound
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const setBalanceQuery = `
UPDATE cash_accounts
SET actual_amount = $1
WHERE id = $2
RETURNING id, name, actual_amount
`

// SetBalance overwrites the stored balance. Used only by the resync.
func (r *RepoPGS) SetBalance(ctx context.Context, amount string, id int32) (domain.CashAccount, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, setBalanceQuery, amount, id)

	var c domain.CashAccount

	err := row.Scan(&c.ID, &c.Name, &c.ActualAmount)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return c, domain.ErrCashNotFound
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const deleteQuery = `
DELETE FROM cash_accounts
WHERE id = $1
`

// Delete removes the cash account with the given id.
func (r *RepoPGS) Delete(ctx context.Context, id int32) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.ErrCashNotFound
	}

	return nil
}
