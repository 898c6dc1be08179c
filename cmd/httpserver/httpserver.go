// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/leodev8821/economicControl-nv-sub002/internal/balancedelivery"
	"github.com/leodev8821/economicControl-nv-sub002/internal/balanceservice"
	"github.com/leodev8821/economicControl-nv-sub002/internal/cashdelivery"
	"github.com/leodev8821/economicControl-nv-sub002/internal/cashrepo"
	"github.com/leodev8821/economicControl-nv-sub002/internal/cashservice"
	"github.com/leodev8821/economicControl-nv-sub002/internal/denominationdelivery"
	"github.com/leodev8821/economicControl-nv-sub002/internal/denominationrepo"
	"github.com/leodev8821/economicControl-nv-sub002/internal/denominationservice"
	"github.com/leodev8821/economicControl-nv-sub002/internal/incomedelivery"
	"github.com/leodev8821/economicControl-nv-sub002/internal/incomerepo"
	"github.com/leodev8821/economicControl-nv-sub002/internal/incomeservice"
	"github.com/leodev8821/economicControl-nv-sub002/internal/middleware"
	"github.com/leodev8821/economicControl-nv-sub002/internal/outcomedelivery"
	"github.com/leodev8821/economicControl-nv-sub002/internal/outcomerepo"
	"github.com/leodev8821/economicControl-nv-sub002/internal/outcomeservice"
	"github.com/leodev8821/economicControl-nv-sub002/internal/reconciledelivery"
	"github.com/leodev8821/economicControl-nv-sub002/internal/reconcilerepo"
	"github.com/leodev8821/economicControl-nv-sub002/internal/reconcileservice"
	"github.com/leodev8821/economicControl-nv-sub002/internal/weekdelivery"
	"github.com/leodev8821/economicControl-nv-sub002/internal/weekrepo"
	"github.com/leodev8821/economicControl-nv-sub002/internal/weekservice"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	cashRepo := cashrepo.NewRepoPGS(conn)
	weekRepo := weekrepo.NewRepoPGS(conn)
	incomeRepo := incomerepo.NewRepoPGS(conn)
	outcomeRepo := outcomerepo.NewRepoPGS(conn)
	denominationRepo := denominationrepo.NewRepoPGS(conn)
	reconcileRepo := reconcilerepo.NewRepoPGS(conn)

	cashService := cashservice.New(cashRepo)
	weekService := weekservice.New(weekRepo)
	incomeService := incomeservice.New(incomeRepo)
	outcomeService := outcomeservice.New(outcomeRepo)
	balanceService := balanceservice.New(cashRepo, incomeRepo, outcomeRepo)
	reconcileService := reconcileservice.New(reconcileRepo)
	denominationService := denominationservice.New(denominationRepo)

	cashHandler := cashdelivery.NewHandler(cashService)
	weekHandler := weekdelivery.NewHandler(weekService)
	incomeHandler := incomedelivery.NewHandler(incomeService)
	outcomeHandler := outcomedelivery.NewHandler(outcomeService)
	balanceHandler := balancedelivery.NewHandler(balanceService)
	reconcileHandler := reconciledelivery.NewHandler(reconcileService)
	denominationHandler := denominationdelivery.NewHandler(denominationService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/balances", balanceHandler.List)
	engine.POST("/balances/resync", reconcileHandler.Resync)

	engine.POST("/cash", cashHandler.Create)
	engine.GET("/cash", cashHandler.List)
	engine.GET("/cash/:id", cashHandler.Get)
	engine.PATCH("/cash/:id", cashHandler.Update)
	engine.DELETE("/cash/:id", cashHandler.Delete)
	engine.GET("/cash/:id/denominations", denominationHandler.ListByCash)

	engine.POST("/weeks", weekHandler.Create)
	engine.GET("/weeks", weekHandler.List)
	engine.GET("/weeks/:id", weekHandler.Get)
	engine.DELETE("/weeks/:id", weekHandler.Delete)

	engine.POST("/incomes", incomeHandler.Create)
	engine.GET("/incomes", incomeHandler.List)
	engine.GET("/incomes/:id", incomeHandler.Get)
	engine.POST("/incomes/:id/hide", incomeHandler.Hide)

	engine.POST("/outcomes", outcomeHandler.Create)
	engine.GET("/outcomes", outcomeHandler.List)
	engine.GET("/outcomes/:id", outcomeHandler.Get)
	engine.POST("/outcomes/:id/hide", outcomeHandler.Hide)

	engine.POST("/denominations", denominationHandler.Create)
	engine.GET("/denominations", denominationHandler.List)
	engine.GET("/denominations/:id", denominationHandler.Get)
	engine.PATCH("/denominations/:id", denominationHandler.Update)
	engine.DELETE("/denominations/:id", denominationHandler.Delete)

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
