// Package incomedelivery manages delivery layer of incomes.
package incomedelivery

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/errorspkg"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/web"
)

// Service provides service layer interface needed by income delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package incomedelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateIncomeParams) (domain.IncomeTxResult, error)
	Get(ctx context.Context, id int64) (domain.Income, error)
	List(ctx context.Context, cashID, weekID *int32, includeHidden bool) ([]domain.Income, error)
	Hide(ctx context.Context, id int64) (domain.Income, error)
}

// Handler facilitates income delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns income handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

const dateLayout = "2006-01-02"

type createRequest struct {
	CashID int32  `json:"cash_id" binding:"required,min=1"`
	WeekID int32  `json:"week_id" binding:"required,min=1"`
	Date   string `json:"date" binding:"required,datetime=2006-01-02"`
	Amount string `json:"amount" binding:"required"`
	Source string `json:"source" binding:"required,min=1"`
}

// Create handles http request to record an income.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	date, _ := time.Parse(dateLayout, req.Date)

	arg := domain.CreateIncomeParams{
		CashID: req.CashID,
		WeekID: req.WeekID,
		Date:   date,
		Amount: req.Amount,
		Source: req.Source,
	}

	result, err := h.service.Create(ctx, arg)
	if err != nil {
		switch err {
		case domain.ErrCashNotFound, domain.ErrWeekNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrInvalidAmount, domain.ErrNegativeAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Success(result))
}

type idRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to read one income.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	i, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrIncomeNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Success(i))
}

type listRequest struct {
	CashID        *int32 `form:"cash_id" binding:"omitempty,min=1"`
	WeekID        *int32 `form:"week_id" binding:"omitempty,min=1"`
	IncludeHidden bool   `form:"include_hidden"`
}

// List handles http request to list incomes, optionally filtered by cash
// account or week. Hidden rows appear only when include_hidden is set.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	items, err := h.service.List(ctx, req.CashID, req.WeekID, req.IncludeHidden)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Success(items))
}

// Hide handles http request to hide an income from default listings and sums.
func (h *Handler) Hide(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	i, err := h.service.Hide(ctx, req.ID)
	if err != nil {
		if err == domain.ErrIncomeNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Success(i))
}
