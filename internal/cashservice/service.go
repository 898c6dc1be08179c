// Package cashservice manages business logic layer of cash accounts.
package cashservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/moneypkg"
)

// Repo provides data access layer interface needed by cash service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package cashservice
type Repo interface {
	Create(ctx context.Context, name, initialAmount string) (domain.CashAccount, error)
	Get(ctx context.Context, id int32) (domain.CashAccount, error)
	List(ctx context.Context) ([]domain.CashAccount, error)
	UpdateName(ctx context.Context, id int32, name string) (domain.CashAccount, error)
	Delete(ctx context.Context, id int32) error
}

// Service facilitates cash account service layer logic.
type Service struct {
	repo Repo
}

// New returns cash service struct to manage cash account bussines logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Create creates and returns a cash account. An empty initial amount
// starts the account at zero.
func (s *Service) Create(ctx context.Context, arg domain.CreateCashParams) (domain.CashAccount, error) {
	l := zerolog.Ctx(ctx)

	initialAmount := "0.00"

	if arg.InitialAmount != "" {
		normalized, err := moneypkg.NormalizeNonNegative(arg.InitialAmount)
		if err != nil {
			l.Info().Err(err).Send()
			return domain.CashAccount{}, domain.ErrInvalidAmount
		}

		initialAmount = normalized
	}

	return s.repo.Create(ctx, arg.Name, initialAmount)
}

// Get returns the cash account with the given id.
func (s *Service) Get(ctx context.Context, id int32) (domain.CashAccount, error) {
	return s.repo.Get(ctx, id)
}

// List returns all cash accounts in id order.
func (s *Service) List(ctx context.Context) ([]domain.CashAccount, error) {
	return s.repo.List(ctx)
}

// UpdateName renames the cash account.
func (s *Service) UpdateName(ctx context.Context, id int32, name string) (domain.CashAccount, error) {
	return s.repo.UpdateName(ctx, id, name)
}

// Delete removes the cash account with the given id.
func (s *Service) Delete(ctx context.Context, id int32) error {
	return s.repo.Delete(ctx, id)
}
