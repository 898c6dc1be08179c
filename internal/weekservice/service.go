// Package weekservice manages business logic layer of weeks.
package weekservice

import (
	"context"

	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
)

// Repo provides data access layer interface needed by week service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package weekservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateWeekParams) (domain.Week, error)
	Get(ctx context.Context, id int32) (domain.Week, error)
	List(ctx context.Context) ([]domain.Week, error)
	Delete(ctx context.Context, id int32) error
}

// Service facilitates week service layer logic.
type Service struct {
	repo Repo
}

// New returns week service struct to manage week bussines logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Create creates and returns a reporting week.
func (s *Service) Create(ctx context.Context, arg domain.CreateWeekParams) (domain.Week, error) {
	if arg.EndDate.Before(arg.StartDate) {
		return domain.Week{}, domain.ErrInvalidDateRange
	}

	return s.repo.Create(ctx, arg)
}

// Get returns the week with the given id.
func (s *Service) Get(ctx context.Context, id int32) (domain.Week, error) {
	return s.repo.Get(ctx, id)
}

// List returns all weeks ordered by start date.
func (s *Service) List(ctx context.Context) ([]domain.Week, error) {
	return s.repo.List(ctx)
}

// Delete removes the week with the given id.
func (s *Service) Delete(ctx context.Context, id int32) error {
	return s.repo.Delete(ctx, id)
}
