// Package denominationrepo manages repository layer of cash denominations.
package denominationrepo

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

// uniqueConstraint is the composite index on (cash_id, denomination_value).
// Its violation is the authoritative duplicate signal; the in-transaction
// pre-check in CreateTx only short-circuits the common case.
const uniqueConstraint = "cash_denominations_cash_id_denomination_value_key"

// RepoPGS facilitates denomination repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns denomination RepoPGS bound to an in-flight transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

// NewRepoPGS returns denomination RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO
    cash_denominations (cash_id, denomination_value, quantity)
VALUES
    ($1, $2, $3)
RETURNING id, cash_id, denomination_value, quantity
`

// Create inserts the denomination row and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateDenominationParams) (domain.Denomination, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.CashID, arg.Value, arg.Quantity)

	var d domain.Denomination

	err := row.Scan(&d.ID, &d.CashID, &d.Value, &d.Quantity)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case uniqueConstraint:
				return d, domain.ErrDenominationExists
			case "cash_denominations_cash_id_fkey":
				return d, domain.ErrCashNotFound
			case "cash_denominations_quantity_check":
				return d, domain.ErrNegativeQuantity
			}
		}

		return d, errorspkg.ErrInternal
	}

	return d, nil
}

const existsQuery = `
SELECT EXISTS (
    SELECT 1 FROM cash_denominations
    WHERE cash_id = $1 AND denomination_value = $2
)
`

// CreateTx verifies the cash account, checks for an existing record with the
// same face value, and inserts, all within one transaction. Two racing
// creators can both pass the check; the unique index then rejects the loser
// and the violation is reported as domain.ErrDenominationExists.
func (r *RepoPGS) CreateTx(ctx context.Context, arg domain.CreateDenominationParams) (domain.Denomination, error) {
	l := zerolog.Ctx(ctx)

	var result domain.Denomination

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

	denominationRepo := NewTxRepoPGS(tx)
	cashRepo := cashrepo.NewRepoPGS(tx)

	if _, err := cashRepo.Get(ctx, arg.CashID); err != nil {
		return result, err
	}

	var exists bool
	if err := tx.QueryRowContext(ctx, existsQuery, arg.CashID, arg.Value).Scan(&exists); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	if exists {
		return result, domain.ErrDenominationExists
	}

	result, err = denominationRepo.Create(ctx, arg)
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
SELECT id, cash_id, denomination_value, quantity
FROM cash_denominations
WHERE id = $1
`

// Get returns the denomination with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Denomination, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var d domain.Denomination

	err := row.Scan(&d.ID, &d.CashID, &d.Value, &d.Quantity)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return d, domain.ErrDenominationNotFound
		}

		return d, errorspkg.ErrInternal
	}

	return d, nil
}

const listByCashQuery = `
SELECT id, cash_id, denomination_value, quantity
FROM cash_denominations
WHERE cash_id = $1
ORDER BY denomination_value
`

// ListByCash returns the denomination set of one cash account ordered by
// face value.
func (r *RepoPGS) ListByCash(ctx context.Context, cashID int32) ([]domain.Denomination, error) {
	return r.list(ctx, listByCashQuery, cashID)
}

const listQuery = `
SELECT id, cash_id, denomination_value, quantity
FROM cash_denominations
ORDER BY cash_id, denomination_value
`

// List returns all denomination records.
func (r *RepoPGS) List(ctx context.Context) ([]domain.Denomination, error) {
	return r.list(ctx, listQuery)
}

func (r *RepoPGS) list(ctx context.Context, query string, args ...any) ([]domain.Denomination, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Denomination{}

	for rows.Next() {
		var d domain.Denomination
		if err := rows.Scan(&d.ID, &d.CashID, &d.Value, &d.Quantity); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, d)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateQuery = `
UPDATE cash_denominations
SET denomination_value = COALESCE($2, denomination_value),
    quantity = COALESCE($3, quantity)
WHERE id = $1
RETURNING id, cash_id, denomination_value, quantity
`

// Update applies the provided fields to the denomination and returns the
// changed record. Nil fields keep their stored values.
func (r *RepoPGS) Update(ctx context.Context, arg domain.UpdateDenominationParams) (domain.Denomination, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, arg.ID, arg.Value, arg.Quantity)

	var d domain.Denomination

	err := row.Scan(&d.ID, &d.CashID, &d.Value, &d.Quantity)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return d, domain.ErrDenominationNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case uniqueConstraint:
				return d, domain.ErrDenominationExists
			case "cash_denominations_quantity_check":
				return d, domain.ErrNegativeQuantity
			}
		}

		return d, errorspkg.ErrInternal
	}

	return d, nil
}

const deleteQuery = `
DELETE FROM cash_denominations
WHERE id = $1
`

// Delete hard-removes the denomination with the given id.
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
		return domain.ErrDenominationNotFound
	}

	return nil
}
