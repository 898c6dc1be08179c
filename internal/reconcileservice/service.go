// Package reconcileservice manages the administrative balance resync.
package reconcileservice

import (
	"context"

	"github.com/rs/zerolog"
)

// Repo provides the transactional resync needed by the service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package reconcileservice
type Repo interface {
	Resync(ctx context.Context) (int, error)
}

// Service facilitates the resync operation.
type Service struct {
	repo Repo
}

// New returns reconcile service struct.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Resync recomputes every stored cash balance from the full ledger history.
// It either rewrites all accounts or none; repeating it with no intervening
// ledger writes is a no-op.
func (s *Service) Resync(ctx context.Context) error {
	l := zerolog.Ctx(ctx)

	n, err := s.repo.Resync(ctx)
	if err != nil {
		return err
	}

	l.Info().Int("accounts", n).Msg("cash balances resynchronized")

	return nil
}
