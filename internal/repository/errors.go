package repository

import "errors"

// Callers see these fixed messages only. The underlying store error is
// logged once at the operation boundary and never surfaces.
var (
	ErrFetchRevenue        = errors.New("failed to fetch revenue data")
	ErrFetchLatestInvoices = errors.New("failed to fetch the latest invoices")
	ErrFetchCardData       = errors.New("failed to fetch card data")
	ErrFetchInvoices       = errors.New("failed to fetch invoices")
	ErrFetchInvoicesPages  = errors.New("failed to fetch total number of invoices")
	ErrFetchInvoice        = errors.New("failed to fetch invoice")
	ErrFetchCustomers      = errors.New("failed to fetch all customers")
	ErrFetchCustomerTable  = errors.New("failed to fetch customer table")
)
