package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/YevhLyt95/next-dashboard/internal/currency"
	"github.com/YevhLyt95/next-dashboard/internal/logger"
	"github.com/YevhLyt95/next-dashboard/internal/metrics"
	"github.com/YevhLyt95/next-dashboard/internal/model"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DashboardRepository owns the read operations behind the invoicing
// dashboard. All queries run against the injected connection pool; no
// operation retries.
type DashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// fail logs the store error once with full detail, records the metric and
// returns the coarse operation error.
func (r *DashboardRepository) fail(op string, coarse, cause error) error {
	logger.Log.Error("database error",
		zap.String("operation", op),
		zap.Error(cause),
	)
	metrics.QueriesTotal.WithLabelValues(op, "error").Inc()
	return coarse
}

func (r *DashboardRepository) observe(op string, start time.Time) {
	metrics.QueriesTotal.WithLabelValues(op, "ok").Inc()
	metrics.QueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// FetchCardData runs the three dashboard aggregates concurrently and joins
// them. The queries are independent reads, so the result is identical to
// running them one after another.
func (r *DashboardRepository) FetchCardData(ctx context.Context) (model.CardData, error) {
	start := time.Now()

	var (
		invoiceCount  int64
		customerCount int64
		sums          struct {
			Paid    sql.NullInt64 `db:"paid"`
			Pending sql.NullInt64 `db:"pending"`
		}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.GetContext(gctx, &invoiceCount, `SELECT COUNT(*) FROM invoices`)
	})
	g.Go(func() error {
		return r.db.GetContext(gctx, &customerCount, `SELECT COUNT(*) FROM customers`)
	})
	g.Go(func() error {
		return r.db.GetContext(gctx, &sums, `
			SELECT SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END)    AS paid,
			       SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END) AS pending
			  FROM invoices`)
	})
	if err := g.Wait(); err != nil {
		return model.CardData{}, r.fail("card_data", ErrFetchCardData, err)
	}

	r.observe("card_data", start)
	return model.CardData{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    currency.FormatNull(sums.Paid),
		TotalPendingInvoices: currency.FormatNull(sums.Pending),
	}, nil
}
