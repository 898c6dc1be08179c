// Package reconciledelivery manages delivery layer of the balance resync.
package reconciledelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leodev8821/economicControl-nv-sub002/pkg/errorspkg"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/web"
)

// Service provides service layer interface needed by reconcile delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package reconciledelivery
type Service interface {
	Resync(ctx context.Context) error
}

// Handler facilitates reconcile delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns reconcile handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

// Resync handles the administrative http request to rewrite every stored
// cash balance from the full ledger history. The response never carries a
// partial-progress report: the operation fully succeeds or fully fails.
func (h *Handler) Resync(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	if err := h.service.Resync(ctx); err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{OK: true, Message: "all cash balances resynchronized"})
}
