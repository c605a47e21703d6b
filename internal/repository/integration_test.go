package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/YevhLyt95/next-dashboard/internal/currency"
	dbpkg "github.com/YevhLyt95/next-dashboard/internal/db"
	"github.com/YevhLyt95/next-dashboard/internal/repository"
	"github.com/YevhLyt95/next-dashboard/internal/seed"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDB provisions a clean seeded schema against TEST_DATABASE_URL and
// skips the test when no database is available.
func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping store-backed tests")
	}

	pg, err := dbpkg.NewPostgresConnection(url, dbpkg.PostgresOpts{PingTimeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Close() })

	_, err = pg.Exec(`DROP TABLE IF EXISTS invoices, customers, users, revenue`)
	require.NoError(t, err)

	schema, err := os.ReadFile(filepath.Join("..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	_, err = pg.Exec(string(schema))
	require.NoError(t, err)

	_, err = seed.Run(context.Background(), pg, seed.Default())
	require.NoError(t, err)

	return pg
}

func TestFetchRevenue(t *testing.T) {
	repo := repository.NewDashboardRepository(setupDB(t))

	series, err := repo.FetchRevenue(context.Background())
	require.NoError(t, err)
	assert.Len(t, series, len(seed.Default().Revenue))
}

func TestFetchCardData(t *testing.T) {
	repo := repository.NewDashboardRepository(setupDB(t))

	fx := seed.Default()
	var paid, pending int64
	for _, inv := range fx.Invoices {
		switch inv.Status {
		case "paid":
			paid += inv.Amount
		case "pending":
			pending += inv.Amount
		}
	}

	cards, err := repo.FetchCardData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(len(fx.Invoices)), cards.NumberOfInvoices)
	assert.Equal(t, int64(len(fx.Customers)), cards.NumberOfCustomers)
	assert.Equal(t, currency.Format(paid), cards.TotalPaidInvoices)
	assert.Equal(t, currency.Format(pending), cards.TotalPendingInvoices)
}

func TestFetchLatestInvoices(t *testing.T) {
	repo := repository.NewDashboardRepository(setupDB(t))

	// YYYY-MM-DD sorts like the dates it encodes.
	fx := seed.Default()
	sorted := append([]seed.InvoiceFixture(nil), fx.Invoices...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	latest, err := repo.FetchLatestInvoices(context.Background())
	require.NoError(t, err)
	require.Len(t, latest, 5)
	for i, inv := range latest {
		assert.Equal(t, currency.Format(sorted[i].Amount), inv.Amount, "latest invoice %d", i)
	}
}

func TestFetchFilteredInvoices(t *testing.T) {
	repo := repository.NewDashboardRepository(setupDB(t))
	ctx := context.Background()

	page1, err := repo.FetchFilteredInvoices(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, page1, repository.InvoicesPerPage)
	for i := 1; i < len(page1); i++ {
		assert.False(t, page1[i].Date.After(page1[i-1].Date), "page 1 not in date-descending order")
	}

	page3, err := repo.FetchFilteredInvoices(ctx, "", 3)
	require.NoError(t, err)
	assert.Len(t, page3, 1) // 13 invoices, page size 6

	// Whitespace-only input matches everything, like empty input.
	padded, err := repo.FetchFilteredInvoices(ctx, "   ", 1)
	require.NoError(t, err)
	assert.Len(t, padded, repository.InvoicesPerPage)

	rabbit, err := repo.FetchFilteredInvoices(ctx, "rabbit", 1)
	require.NoError(t, err)
	assert.Len(t, rabbit, 2) // Evil Rabbit's two invoices
}

func TestFetchInvoicesPages(t *testing.T) {
	repo := repository.NewDashboardRepository(setupDB(t))
	ctx := context.Background()

	all, err := repo.FetchInvoicesPages(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, all) // ceil(13/6)

	paid, err := repo.FetchInvoicesPages(ctx, "paid")
	require.NoError(t, err)
	assert.Equal(t, 2, paid) // ceil(8/6)

	none, err := repo.FetchInvoicesPages(ctx, "no-such-substring")
	require.NoError(t, err)
	assert.Equal(t, 0, none)

	// Longer, more specific queries never match more rows.
	assert.GreaterOrEqual(t, all, paid)
	assert.GreaterOrEqual(t, paid, none)
}

func TestFetchInvoiceByID(t *testing.T) {
	repo := repository.NewDashboardRepository(setupDB(t))
	ctx := context.Background()

	// The 54246-cent invoice is unique in the fixture set; find its
	// generated id through the listing.
	rows, err := repo.FetchFilteredInvoices(ctx, "54246", 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Lee Robinson", rows[0].Name)

	form, err := repo.FetchInvoiceByID(ctx, rows[0].ID)
	require.NoError(t, err)
	require.NotNil(t, form)
	assert.Equal(t, "542.46", form.Amount.String())
	assert.Equal(t, "pending", form.Status.String())

	missing, err := repo.FetchInvoiceByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFetchCustomers(t *testing.T) {
	repo := repository.NewDashboardRepository(setupDB(t))

	customers, err := repo.FetchCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, len(seed.Default().Customers))
	assert.True(t, sort.SliceIsSorted(customers, func(i, j int) bool {
		return customers[i].Name < customers[j].Name
	}))
}

func TestFetchFilteredCustomers(t *testing.T) {
	repo := repository.NewDashboardRepository(setupDB(t))
	ctx := context.Background()

	fx := seed.Default()
	all, err := repo.FetchFilteredCustomers(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, len(fx.Customers))
	assert.True(t, sort.SliceIsSorted(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	}))

	var count, pending, paid int64
	for _, c := range fx.Customers {
		if c.Name != "Evil Rabbit" {
			continue
		}
		for _, inv := range fx.Invoices {
			if inv.CustomerID != c.ID {
				continue
			}
			count++
			if inv.Status == "paid" {
				paid += inv.Amount
			} else {
				pending += inv.Amount
			}
		}
	}

	rabbit, err := repo.FetchFilteredCustomers(ctx, "rabbit")
	require.NoError(t, err)
	require.Len(t, rabbit, 1)
	assert.Equal(t, "Evil Rabbit", rabbit[0].Name)
	assert.Equal(t, count, rabbit[0].TotalInvoices)
	assert.Equal(t, currency.Format(pending), rabbit[0].TotalPending)
	assert.Equal(t, currency.Format(paid), rabbit[0].TotalPaid)
}

// Re-seeding skips existing users/customers, appends invoices under fresh
// ids, and fails on the revenue batch (month is unique).
func TestReseedPolicies(t *testing.T) {
	pg := setupDB(t)
	ctx := context.Background()

	fx := seed.Default()
	_, err := seed.Run(ctx, pg, fx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert revenue")

	var users, customers, invoices, revenue int
	require.NoError(t, pg.Get(&users, `SELECT COUNT(*) FROM users`))
	require.NoError(t, pg.Get(&customers, `SELECT COUNT(*) FROM customers`))
	require.NoError(t, pg.Get(&invoices, `SELECT COUNT(*) FROM invoices`))
	require.NoError(t, pg.Get(&revenue, `SELECT COUNT(*) FROM revenue`))

	assert.Equal(t, len(fx.Users), users)
	assert.Equal(t, len(fx.Customers), customers)
	assert.Equal(t, 2*len(fx.Invoices), invoices)
	assert.Equal(t, len(fx.Revenue), revenue)
}
