// Package outcomeservice manages business logic layer of outcomes.
package outcomeservice

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/moneypkg"
)

// Repo provides data access layer interface needed by outcome service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package outcomeservice
type Repo interface {
	CreateTx(ctx context.Context, arg domain.CreateOutcomeParams) (domain.OutcomeTxResult, error)
	Get(ctx context.Context, id int64) (domain.Outcome, error)
	List(ctx context.Context, cashID, weekID *int32, includeHidden bool) ([]domain.Outcome, error)
	Hide(ctx context.Context, id int64) (domain.Outcome, error)
}

// Service facilitates outcome service layer logic.
type Service struct {
	repo Repo
}

// New returns outcome service struct to manage outcome bussines logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Create records an outcome and subtracts its amount from the cash
// account's stored balance in one transaction.
func (s *Service) Create(ctx context.Context, arg domain.CreateOutcomeParams) (domain.OutcomeTxResult, error) {
	l := zerolog.Ctx(ctx)

	amount, err := moneypkg.NormalizePositive(arg.Amount)
	if err != nil {
		l.Info().Err(err).Send()

		if errors.Is(err, moneypkg.ErrNotPositive) {
			return domain.OutcomeTxResult{}, domain.ErrNegativeAmount
		}

		return domain.OutcomeTxResult{}, domain.ErrInvalidAmount
	}

	arg.Amount = amount

	return s.repo.CreateTx(ctx, arg)
}

// Get returns the outcome with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Outcome, error) {
	return s.repo.Get(ctx, id)
}

// List returns outcome entries, optionally restricted to a cash account or
// a week.
func (s *Service) List(ctx context.Context, cashID, weekID *int32, includeHidden bool) ([]domain.Outcome, error) {
	return s.repo.List(ctx, cashID, weekID, includeHidden)
}

// Hide flags the outcome as hidden from default listings and sums.
func (s *Service) Hide(ctx context.Context, id int64) (domain.Outcome, error) {
	return s.repo.Hide(ctx, id)
}
