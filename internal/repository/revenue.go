package repository

import (
	"context"
	"time"

	"github.com/YevhLyt95/next-dashboard/internal/model"
)

// FetchRevenue returns the whole revenue series in storage order. The
// table holds one row per month, so no pagination.
func (r *DashboardRepository) FetchRevenue(ctx context.Context) ([]model.Revenue, error) {
	start := time.Now()

	var series []model.Revenue
	err := r.db.SelectContext(ctx, &series, `SELECT month, revenue FROM revenue`)
	if err != nil {
		return nil, r.fail("revenue", ErrFetchRevenue, err)
	}

	r.observe("revenue", start)
	return series, nil
}
