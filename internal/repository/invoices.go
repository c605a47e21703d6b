package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/YevhLyt95/next-dashboard/internal/currency"
	"github.com/YevhLyt95/next-dashboard/internal/model"
	"github.com/google/uuid"
)

// InvoicesPerPage is the fixed page size of the invoice listing.
const InvoicesPerPage = 6

// offsetForPage maps a 1-indexed page to its row offset. Pages below 1
// clamp to the first page so the offset never goes negative.
func offsetForPage(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * InvoicesPerPage
}

// pageCount is ceil(total / InvoicesPerPage).
func pageCount(total int) int {
	return (total + InvoicesPerPage - 1) / InvoicesPerPage
}

// invoiceFilter is the shared substring predicate of the invoice listing
// and its page count. $1 is the ILIKE pattern.
const invoiceFilter = `
	   customers.name ILIKE $1
	OR customers.email ILIKE $1
	OR invoices.amount::text ILIKE $1
	OR invoices.date::text ILIKE $1
	OR invoices.status ILIKE $1`

// FetchLatestInvoices returns the five most recent invoices joined with
// their customers, amounts formatted for display.
func (r *DashboardRepository) FetchLatestInvoices(ctx context.Context) ([]model.LatestInvoice, error) {
	start := time.Now()

	var rows []struct {
		ID       uuid.UUID `db:"id"`
		Name     string    `db:"name"`
		Email    string    `db:"email"`
		ImageURL string    `db:"image_url"`
		Amount   int64     `db:"amount"`
	}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT invoices.id, customers.name, customers.image_url, customers.email, invoices.amount
		  FROM invoices
		  JOIN customers ON invoices.customer_id = customers.id
		 ORDER BY invoices.date DESC
		 LIMIT 5`)
	if err != nil {
		return nil, r.fail("latest_invoices", ErrFetchLatestInvoices, err)
	}

	latest := make([]model.LatestInvoice, 0, len(rows))
	for _, row := range rows {
		latest = append(latest, model.LatestInvoice{
			ID:       row.ID,
			Name:     row.Name,
			Email:    row.Email,
			ImageURL: row.ImageURL,
			Amount:   currency.Format(row.Amount),
		})
	}
	r.observe("latest_invoices", start)
	return latest, nil
}

// FetchFilteredInvoices returns one page of invoices whose customer name,
// customer email, amount, date or status contains the query, newest first.
// The query is trimmed first; empty input matches every row.
func (r *DashboardRepository) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]model.InvoiceRow, error) {
	start := time.Now()
	pattern := "%" + strings.TrimSpace(query) + "%"

	var invoices []model.InvoiceRow
	err := r.db.SelectContext(ctx, &invoices, `
		SELECT invoices.id, invoices.amount, invoices.date, invoices.status,
		       customers.name, customers.email, customers.image_url
		  FROM invoices
		  JOIN customers ON invoices.customer_id = customers.id
		 WHERE `+invoiceFilter+`
		 ORDER BY invoices.date DESC
		 LIMIT $2 OFFSET $3`,
		pattern, InvoicesPerPage, offsetForPage(page))
	if err != nil {
		return nil, r.fail("filtered_invoices", ErrFetchInvoices, err)
	}

	r.observe("filtered_invoices", start)
	return invoices, nil
}

// FetchInvoicesPages returns the number of listing pages matching the
// query. The query is matched as-is, without the trimming
// FetchFilteredInvoices applies; both treat empty input as match-all.
func (r *DashboardRepository) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	start := time.Now()

	var total int
	err := r.db.GetContext(ctx, &total, `
		SELECT COUNT(*)
		  FROM invoices
		  JOIN customers ON invoices.customer_id = customers.id
		 WHERE `+invoiceFilter,
		"%"+query+"%")
	if err != nil {
		return 0, r.fail("invoices_pages", ErrFetchInvoicesPages, err)
	}

	r.observe("invoices_pages", start)
	return pageCount(total), nil
}

// FetchInvoiceByID returns a single invoice with its amount converted to
// major units, or (nil, nil) when no invoice matches.
func (r *DashboardRepository) FetchInvoiceByID(ctx context.Context, id uuid.UUID) (*model.InvoiceForm, error) {
	start := time.Now()

	var row struct {
		ID         uuid.UUID           `db:"id"`
		CustomerID uuid.UUID           `db:"customer_id"`
		Amount     int64               `db:"amount"`
		Status     model.InvoiceStatus `db:"status"`
	}
	err := r.db.GetContext(ctx, &row, `
		SELECT id, customer_id, amount, status
		  FROM invoices
		 WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		// A missing invoice is a valid empty result, not a failure.
		r.observe("invoice_by_id", start)
		return nil, nil
	}
	if err != nil {
		return nil, r.fail("invoice_by_id", ErrFetchInvoice, err)
	}

	r.observe("invoice_by_id", start)
	return &model.InvoiceForm{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Amount:     currency.MajorUnits(row.Amount),
		Status:     row.Status,
	}, nil
}
