// Package balancedelivery manages delivery layer of balance snapshots.
package balancedelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/errorspkg"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/web"
)

// Service provides service layer interface needed by balance delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package balancedelivery
type Service interface {
	Snapshots(ctx context.Context, f domain.BalanceFilter) ([]domain.BalanceSnapshot, error)
}

// Handler facilitates balance delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns balance handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

const dateLayout = "2006-01-02"

type listRequest struct {
	WeekID    *int32 `form:"week_id" binding:"omitempty,min=1"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

func (req listRequest) filter() (domain.BalanceFilter, error) {
	f := domain.BalanceFilter{WeekID: req.WeekID}

	if req.StartDate != "" {
		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return f, err
		}

		f.StartDate = &start
	}

	if req.EndDate != "" {
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return f, err
		}

		f.EndDate = &end
	}

	return f, nil
}

// List handles http request to compute balance snapshots for an optional
// week or date range scope.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	f, err := req.filter()
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	snapshots, err := h.service.Snapshots(ctx, f)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingFilter) {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	if len(snapshots) == 0 {
		gctx.JSON(http.StatusOK, web.Info("no cash accounts registered", snapshots))
		return
	}

	gctx.JSON(http.StatusOK, web.Success(snapshots))
}
