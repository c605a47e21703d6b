// Package seed populates the store from the built-in fixture dataset.
// Entity types are written in referential order (users, customers,
// invoices, revenue), each in its own transaction. A committed batch is
// not undone when a later one fails.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/YevhLyt95/next-dashboard/internal/logger"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Conflict policy per entity type. Users and customers tolerate
// re-seeding (existing rows are skipped); invoices get fresh ids every run
// and accumulate; revenue months are unique, so a second run fails.
type policy string

const (
	policySkipDuplicates  policy = "skip-duplicates"
	policyAppend          policy = "append"
	policyFailOnDuplicate policy = "fail-on-duplicate"
)

// Report carries the number of fixture records written per entity type.
type Report struct {
	Users     int
	Customers int
	Invoices  int
	Revenue   int
}

// Run seeds all four entity types and reports per-type counts. The first
// failure aborts the run.
func Run(ctx context.Context, db *sqlx.DB, fx Fixtures) (Report, error) {
	var rep Report

	n, err := seedUsers(ctx, db, fx.Users)
	if err != nil {
		return rep, err
	}
	rep.Users = n
	logSeeded("users", n, policySkipDuplicates)

	n, err = seedCustomers(ctx, db, fx.Customers)
	if err != nil {
		return rep, err
	}
	rep.Customers = n
	logSeeded("customers", n, policySkipDuplicates)

	n, err = seedInvoices(ctx, db, fx.Invoices)
	if err != nil {
		return rep, err
	}
	rep.Invoices = n
	logSeeded("invoices", n, policyAppend)

	n, err = seedRevenue(ctx, db, fx.Revenue)
	if err != nil {
		return rep, err
	}
	rep.Revenue = n
	logSeeded("revenue", n, policyFailOnDuplicate)

	return rep, nil
}

func logSeeded(entity string, count int, p policy) {
	logger.Log.Info("seeded "+entity,
		zap.Int("count", count),
		zap.String("policy", string(p)),
	)
}

func seedUsers(ctx context.Context, db *sqlx.DB, users []UserFixture) (int, error) {
	const q = `
		INSERT INTO users (id, name, email, password)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, u := range users {
		if _, err := tx.ExecContext(ctx, q, u.ID, u.Name, u.Email, u.Password); err != nil {
			return 0, fmt.Errorf("insert user %q: %w", u.Email, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit users: %w", err)
	}
	return len(users), nil
}

func seedCustomers(ctx context.Context, db *sqlx.DB, customers []CustomerFixture) (int, error) {
	const q = `
		INSERT INTO customers (id, name, email, image_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range customers {
		if _, err := tx.ExecContext(ctx, q, c.ID, c.Name, c.Email, c.ImageURL); err != nil {
			return 0, fmt.Errorf("insert customer %q: %w", c.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit customers: %w", err)
	}
	return len(customers), nil
}

// seedInvoices parses the textual fixture dates; one malformed date fails
// the whole seed. Ids are generated per run, so rows accumulate across runs.
func seedInvoices(ctx context.Context, db *sqlx.DB, invoices []InvoiceFixture) (int, error) {
	const q = `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)`

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, inv := range invoices {
		date, err := time.Parse("2006-01-02", inv.Date)
		if err != nil {
			return 0, fmt.Errorf("parse invoice date %q: %w", inv.Date, err)
		}
		if _, err := tx.ExecContext(ctx, q, uuid.New(), inv.CustomerID, inv.Amount, inv.Status, date); err != nil {
			return 0, fmt.Errorf("insert invoice for customer %s: %w", inv.CustomerID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit invoices: %w", err)
	}
	return len(invoices), nil
}

func seedRevenue(ctx context.Context, db *sqlx.DB, revenue []RevenueFixture) (int, error) {
	const q = `
		INSERT INTO revenue (month, revenue)
		VALUES ($1, $2)`

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, rev := range revenue {
		if _, err := tx.ExecContext(ctx, q, rev.Month, rev.Revenue); err != nil {
			return 0, fmt.Errorf("insert revenue %q: %w", rev.Month, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit revenue: %w", err)
	}
	return len(revenue), nil
}
