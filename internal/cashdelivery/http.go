// Package cashdelivery manages delivery layer of cash accounts.
package cashdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/errorspkg"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/web"
)

// Service provides service layer interface needed by cash delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package cashdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateCashParams) (domain.CashAccount, error)
	Get(ctx context.Context, id int32) (domain.CashAccount, error)
	List(ctx context.Context) ([]domain.CashAccount, error)
	UpdateName(ctx context.Context, id int32, name string) (domain.CashAccount, error)
	Delete(ctx context.Context, id int32) error
}

// Handler facilitates cash delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns cash handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

type createRequest struct {
	Name          string `json:"name" binding:"required,min=1"`
	InitialAmount string `json:"initial_amount"`
}

// Create handles http request to create a cash account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	arg := domain.CreateCashParams{
		Name:          req.Name,
		InitialAmount: req.InitialAmount,
	}

	created, err := h.service.Create(ctx, arg)
	if err != nil {
		switch err {
		case domain.ErrCashNameTaken:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case domain.ErrInvalidAmount:
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

// Get handles http request to read one cash account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	c, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrCashNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Success(c))
}

// List handles http request to read all cash accounts.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	items, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Success(items))
}

type updateRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

// Update handles http request to rename a cash account.
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

	updated, err := h.service.UpdateName(ctx, uri.ID, req.Name)
	if err != nil {
		switch err {
		case domain.ErrCashNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrCashNameTaken:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Success(updated))
}

// Delete handles http request to remove a cash account.
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
		if err == domain.ErrCashNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{OK: true, Message: "cash account removed"})
}
