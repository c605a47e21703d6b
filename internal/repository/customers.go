package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/YevhLyt95/next-dashboard/internal/currency"
	"github.com/YevhLyt95/next-dashboard/internal/model"
)

// FetchCustomers returns every customer as an id/name pair, sorted by
// name. Meant for selection lists.
func (r *DashboardRepository) FetchCustomers(ctx context.Context) ([]model.CustomerField, error) {
	start := time.Now()

	var customers []model.CustomerField
	err := r.db.SelectContext(ctx, &customers, `
		SELECT id, name
		  FROM customers
		 ORDER BY name ASC`)
	if err != nil {
		return nil, r.fail("customers", ErrFetchCustomers, err)
	}

	r.observe("customers", start)
	return customers, nil
}

// FetchFilteredCustomers returns the customers table: per-customer invoice
// count and pending/paid totals, filtered by a name/email substring match.
// Customers without invoices appear with zero totals.
func (r *DashboardRepository) FetchFilteredCustomers(ctx context.Context, query string) ([]model.CustomerSummary, error) {
	start := time.Now()

	var rows []customerSummaryRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT customers.id, customers.name, customers.email, customers.image_url,
		       COUNT(invoices.id) AS total_invoices,
		       SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END) AS total_pending,
		       SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END)    AS total_paid
		  FROM customers
		  LEFT JOIN invoices ON customers.id = invoices.customer_id
		 WHERE customers.name ILIKE $1 OR customers.email ILIKE $1
		 GROUP BY customers.id, customers.name, customers.email, customers.image_url
		 ORDER BY customers.name ASC`,
		"%"+query+"%")
	if err != nil {
		return nil, r.fail("customer_table", ErrFetchCustomerTable, err)
	}

	customers := make([]model.CustomerSummary, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, model.CustomerSummary{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  currency.FormatNull(row.TotalPending),
			TotalPaid:     currency.FormatNull(row.TotalPaid),
		})
	}
	r.observe("customer_table", start)
	return customers, nil
}

type customerSummaryRow struct {
	model.Customer
	TotalInvoices int64         `db:"total_invoices"`
	TotalPending  sql.NullInt64 `db:"total_pending"`
	TotalPaid     sql.NullInt64 `db:"total_paid"`
}
