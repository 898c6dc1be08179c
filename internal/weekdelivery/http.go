// Package weekdelivery manages delivery layer of weeks.
package weekdelivery

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

// Service provides service layer interface needed by week delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package weekdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateWeekParams) (domain.Week, error)
	Get(ctx context.Context, id int32) (domain.Week, error)
	List(ctx context.Context) ([]domain.Week, error)
	Delete(ctx context.Context, id int32) error
}

// Handler facilitates week delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns week handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

const dateLayout = "2006-01-02"

type createRequest struct {
	Name      string `json:"name" binding:"required,min=1"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

// Create handles http request to create a reporting week.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	startDate, _ := time.Parse(dateLayout, req.StartDate)
	endDate, _ := time.Parse(dateLayout, req.EndDate)

	arg := domain.CreateWeekParams{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
	}

	created, err := h.service.Create(ctx, arg)
	if err != nil {
		switch err {
		case domain.ErrWeekNameTaken:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case domain.ErrInvalidDateRange:
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

// Get handles http request to read one week.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	w, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrWeekNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Success(w))
}

// List handles http request to read all weeks.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	items, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Success(items))
}

// Delete handles http request to remove a week.
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
		if err == domain.ErrWeekNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{OK: true, Message: "week removed"})
}
