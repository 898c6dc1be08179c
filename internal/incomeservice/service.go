// Package incomeservice manages business logic layer of incomes.
package incomeservice

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/moneypkg"
)

// Repo provides data access layer interface needed by income service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package incomeservice
type Repo interface {
	CreateTx(ctx context.Context, arg domain.CreateIncomeParams) (domain.IncomeTxResult, error)
	Get(ctx context.Context, id int64) (domain.Income, error)
	List(ctx context.Context, cashID, weekID *int32, includeHidden bool) ([]domain.Income, error)
	Hide(ctx context.Context, id int64) (domain.Income, error)
}

// Service facilitates income service layer logic.
type Service struct {
	repo Repo
}

// New returns income service struct to manage income bussines logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Create records an income and adds its amount to the cash account's stored
// balance in one transaction.
func (s *Service) Create(ctx context.Context, arg domain.CreateIncomeParams) (domain.IncomeTxResult, error) {
	l := zerolog.Ctx(ctx)

	amount, err := moneypkg.NormalizePositive(arg.Amount)
	if err != nil {
		l.Info().Err(err).Send()

		if errors.Is(err, moneypkg.ErrNotPositive) {
			return domain.IncomeTxResult{}, domain.ErrNegativeAmount
		}

		return domain.IncomeTxResult{}, domain.ErrInvalidAmount
	}

	arg.Amount = amount

	return s.repo.CreateTx(ctx, arg)
}

// Get returns the income with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Income, error) {
	return s.repo.Get(ctx, id)
}

// List returns income entries, optionally restricted to a cash account or
// a week.
func (s *Service) List(ctx context.Context, cashID, weekID *int32, includeHidden bool) ([]domain.Income, error) {
	return s.repo.List(ctx, cashID, weekID, includeHidden)
}

// Hide flags the income as hidden from default listings and sums.
func (s *Service) Hide(ctx context.Context, id int64) (domain.Income, error) {
	return s.repo.Hide(ctx, id)
}
