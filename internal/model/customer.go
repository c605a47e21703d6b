package model

import "github.com/google/uuid"

type Customer struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Name     string    `db:"name" json:"name"`
	Email    string    `db:"email" json:"email"`
	ImageURL string    `db:"image_url" json:"image_url"`
}

// CustomerField is the minimal projection for selection lists.
type CustomerField struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
}

// CustomerSummary is one row of the customers table view: per-customer
// invoice count plus pending/paid totals as display strings.
type CustomerSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  string    `json:"total_pending"`
	TotalPaid     string    `json:"total_paid"`
}
