// Package weekrepo manages repository layer of weeks.
package weekrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/dbpkg"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/errorspkg"
)

// RepoPGS facilitates week repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns week RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    weeks (name, start_date, end_date)
VALUES
    ($1, $2, $3)
RETURNING id, name, start_date, end_date
`

// Create creates the week and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateWeekParams) (domain.Week, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.Name, arg.StartDate, arg.EndDate)

	var w domain.Week

	err := row.Scan(&w.ID, &w.Name, &w.StartDate, &w.EndDate)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "weeks_name_key" {
				return w, domain.ErrWeekNameTaken
			}
		}

		return w, errorspkg.ErrInternal
	}

	return w, nil
}

const getQuery = `
SELECT id, name, start_date, end_date
FROM weeks
WHERE id = $1
`

// Get returns the week with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Week, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var w domain.Week

	err := row.Scan(&w.ID, &w.Name, &w.StartDate, &w.EndDate)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return w, domain.ErrWeekNotFound
		}

		return w, errorspkg.ErrInternal
	}

	return w, nil
}

const listQuery = `
SELECT id, name, start_date, end_date
FROM weeks
ORDER BY start_date, id
`

// List returns all weeks ordered by start date.
func (r *RepoPGS) List(ctx context.Context) ([]domain.Week, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Week{}

	for rows.Next() {
		var w domain.Week
		if err := rows.Scan(&w.ID, &w.Name, &w.StartDate, &w.EndDate); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, w)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const deleteQuery = `
DELETE FROM weeks
WHERE id = $1
`

// Delete removes the week with the given id.
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
		return domain.ErrWeekNotFound
	}

	return nil
}
