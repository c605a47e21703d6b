package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

func (s InvoiceStatus) String() string { return string(s) }

// ParseInvoiceStatus normalizes input.
// Returns (value, true) if valid; otherwise ("", false).
func ParseInvoiceStatus(s string) (InvoiceStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return InvoiceStatusPending, true
	case "paid":
		return InvoiceStatusPaid, true
	default:
		return "", false
	}
}

func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice is the stored row. Amount is an integer number of cents.
type Invoice struct {
	ID         uuid.UUID     `db:"id" json:"id"`
	CustomerID uuid.UUID     `db:"customer_id" json:"customer_id"`
	Amount     int64         `db:"amount" json:"amount"`
	Status     InvoiceStatus `db:"status" json:"status"`
	Date       time.Time     `db:"date" json:"date"`
}

// InvoiceRow is one row of the filtered invoice listing, joined with its
// customer. Amount stays in cents; display formatting belongs to the caller.
type InvoiceRow struct {
	ID       uuid.UUID     `db:"id" json:"id"`
	Amount   int64         `db:"amount" json:"amount"`
	Date     time.Time     `db:"date" json:"date"`
	Status   InvoiceStatus `db:"status" json:"status"`
	Name     string        `db:"name" json:"name"`
	Email    string        `db:"email" json:"email"`
	ImageURL string        `db:"image_url" json:"image_url"`
}

// LatestInvoice is one of the five most recent invoices, amount already
// formatted as a display string.
type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
	Amount   string    `json:"amount"`
}

// InvoiceForm is the single-invoice projection used to prefill edit forms.
// Amount is in major units (1050 cents -> 10.5).
type InvoiceForm struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     InvoiceStatus   `json:"status"`
}

// CardData aggregates the dashboard summary cards.
type CardData struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}
