// Package denominationdelivery manages delivery layer of cash denominations.
package denominationdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/errorspkg"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/web"
)

// Service provides service layer interface needed by denomination delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package denominationdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateDenominationParams) (domain.Denomination, error)
	Get(ctx context.Context, id int32) (domain.Denomination, error)
	List(ctx context.Context) ([]domain.Denomination, error)
	ListByCash(ctx context.Context, cashID int32) ([]domain.Denomination, error)
	Update(ctx context.Context, arg domain.UpdateDenominationParams) (domain.Denomination, error)
	Delete(ctx context.Context, id int32) error
}

// Handler facilitates denomination delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns denomination handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

type createRequest struct {
	CashID   int32  `json:"cash_id" binding:"required,min=1"`
	Value    string `json:"denomination_value" binding:"required"`
	Quantity string `json:"quantity" binding:"required"`
}

// Create handles http request to register a denomination for a cash account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	arg := domain.CreateDenominationParams{
		CashID:   req.CashID,
		Value:    req.Value,
		Quantity: req.Quantity,
	}

	created, err := h.service.Create(ctx, arg)
	if err != nil {
		switch err {
		case domain.ErrCashNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrDenominationExists:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case domain.ErrInvalidAmount, domain.ErrNegativeQuantity:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Success(created))
}

type idRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to read one denomination.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	d, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrDenominationNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Success(d))
}

// List handles http request to read all denomination records.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	items, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Success(items))
}

// ListByCash handles http request to read one cash account's denomination set.
func (h *Handler) ListByCash(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	items, err := h.service.ListByCash(ctx, req.ID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Success(items))
}

type updateRequest struct {
	Value    *string `json:"denomination_value"`
	Quantity *string `json:"quantity"`
}

// Update handles http request to partially update a denomination.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	arg := domain.UpdateDenominationParams{
		ID:       uri.ID,
		Value:    req.Value,
		Quantity: req.Quantity,
	}

	updated, err := h.service.Update(ctx, arg)
	if err != nil {
		switch err {
		case domain.ErrDenominationNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrDenominationExists:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case domain.ErrInvalidAmount, domain.ErrNegativeQuantity:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Success(updated))
}

// Delete handles http request to hard-remove a denomination.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	if err := h.service.Delete(ctx, req.ID); err != nil {
		if err == domain.ErrDenominationNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{OK: true, Message: "denomination removed"})
}
