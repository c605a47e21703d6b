package http

import (
	"context"
	"net/http"
	"time"

	"github.com/YevhLyt95/next-dashboard/internal/config"
	"github.com/YevhLyt95/next-dashboard/internal/http/middleware"
	"github.com/YevhLyt95/next-dashboard/internal/metrics"
	"github.com/YevhLyt95/next-dashboard/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

type Server struct{ e *echo.Echo }

// NewServer wires the dashboard read API. rds may be nil; the rate limiter
// then passes everything through.
func NewServer(cfg config.Config, pg *sqlx.DB, rds *redis.Client) *Server {
	repo := repository.NewDashboardRepository(pg)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMid.Recover(), echoMid.Logger())

	metrics.MustRegister(prometheus.DefaultRegisterer)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rlMW := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Redis:          rds,
		RPS:            cfg.RateLimit.RPS,
		KeyPrefix:      "rl:ip:",
		Window:         time.Second,
		RetryAfterHint: true,
	})

	v1 := e.Group("/v1", rlMW)
	v1.GET("/revenue", revenueHandler(repo))
	v1.GET("/dashboard/cards", cardsHandler(repo))
	v1.GET("/invoices/latest", latestInvoicesHandler(repo))
	v1.GET("/invoices/pages", invoicesPagesHandler(repo))
	v1.GET("/invoices/:id", invoiceByIDHandler(repo))
	v1.GET("/invoices", listInvoicesHandler(repo))
	v1.GET("/customers/table", customersTableHandler(repo))
	v1.GET("/customers", customersHandler(repo))

	return &Server{e: e}
}

func (s *Server) Start(addr string) error { return s.e.Start(addr) }

func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }
