// Package denominationservice manages business logic layer of cash denominations.
package denominationservice

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/moneypkg"
)

// Repo provides data access layer interface needed by denomination service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package denominationservice
type Repo interface {
	CreateTx(ctx context.Context, arg domain.CreateDenominationParams) (domain.Denomination, error)
	Get(ctx context.Context, id int32) (domain.Denomination, error)
	List(ctx context.Context) ([]domain.Denomination, error)
	ListByCash(ctx context.Context, cashID int32) ([]domain.Denomination, error)
	Update(ctx context.Context, arg domain.UpdateDenominationParams) (domain.Denomination, error)
	Delete(ctx context.Context, id int32) error
}

// Service facilitates denomination service layer logic.
type Service struct {
	repo Repo
}

// New returns denomination service struct to manage denomination bussines logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Create registers a denomination face value for a cash account. Quantity
// zero is allowed (seeding an empty drawer); the pair (cash, value) must
// not exist yet.
func (s *Service) Create(ctx context.Context, arg domain.CreateDenominationParams) (domain.Denomination, error) {
	l := zerolog.Ctx(ctx)

	value, err := moneypkg.NormalizePositive(arg.Value)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Denomination{}, domain.ErrInvalidAmount
	}

	quantity, err := moneypkg.NormalizeNonNegative(arg.Quantity)
	if err != nil {
		l.Info().Err(err).Send()

		if errors.Is(err, moneypkg.ErrNegative) {
			return domain.Denomination{}, domain.ErrNegativeQuantity
		}

		return domain.Denomination{}, domain.ErrInvalidAmount
	}

	arg.Value = value
	arg.Quantity = quantity

	return s.repo.CreateTx(ctx, arg)
}

// Get returns the denomination with the given id.
func (s *Service) Get(ctx context.Context, id int32) (domain.Denomination, error) {
	return s.repo.Get(ctx, id)
}

// List returns all denomination records.
func (s *Service) List(ctx context.Context) ([]domain.Denomination, error) {
	return s.repo.List(ctx)
}

// ListByCash returns the denomination set of one cash account.
func (s *Service) ListByCash(ctx context.Context, cashID int32) ([]domain.Denomination, error) {
	return s.repo.ListByCash(ctx, cashID)
}

// Update applies the provided fields to the denomination.
func (s *Service) Update(ctx context.Context, arg domain.UpdateDenominationParams) (domain.Denomination, error) {
	l := zerolog.Ctx(ctx)

	if arg.Value != nil {
		value, err := moneypkg.NormalizePositive(*arg.Value)
		if err != nil {
			l.Info().Err(err).Send()
			return domain.Denomination{}, domain.ErrInvalidAmount
		}

		arg.Value = &value
	}

	if arg.Quantity != nil {
		quantity, err := moneypkg.NormalizeNonNegative(*arg.Quantity)
		if err != nil {
			l.Info().Err(err).Send()

			if errors.Is(err, moneypkg.ErrNegative) {
				return domain.Denomination{}, domain.ErrNegativeQuantity
			}

			return domain.Denomination{}, domain.ErrInvalidAmount
		}

		arg.Quantity = &quantity
	}

	return s.repo.Update(ctx, arg)
}

// Delete hard-removes the denomination with the given id.
func (s *Service) Delete(ctx context.Context, id int32) error {
	return s.repo.Delete(ctx, id)
}
