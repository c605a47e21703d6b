package seed

import (
	"testing"
	"time"

	"github.com/YevhLyt95/next-dashboard/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The seeder writes invoices after customers precisely because of the
// reference; a fixture invoice pointing at an unknown customer would
// silently vanish from every joined result.
func TestDefaultFixturesReferentialIntegrity(t *testing.T) {
	fx := Default()

	customers := make(map[uuid.UUID]bool, len(fx.Customers))
	for _, c := range fx.Customers {
		customers[c.ID] = true
	}

	for i, inv := range fx.Invoices {
		assert.True(t, customers[inv.CustomerID], "invoice %d references unknown customer %s", i, inv.CustomerID)
	}
}

func TestDefaultFixturesInvoices(t *testing.T) {
	fx := Default()
	require.NotEmpty(t, fx.Invoices)

	for i, inv := range fx.Invoices {
		_, err := time.Parse("2006-01-02", inv.Date)
		assert.NoError(t, err, "invoice %d date %q", i, inv.Date)

		assert.GreaterOrEqual(t, inv.Amount, int64(0), "invoice %d amount", i)

		st, ok := model.ParseInvoiceStatus(inv.Status)
		assert.True(t, ok, "invoice %d status %q", i, inv.Status)
		assert.True(t, st.Valid())
	}
}

func TestDefaultFixturesRevenue(t *testing.T) {
	fx := Default()
	require.Len(t, fx.Revenue, 12)

	months := make(map[string]bool, len(fx.Revenue))
	for _, rev := range fx.Revenue {
		assert.False(t, months[rev.Month], "duplicate month %q", rev.Month)
		months[rev.Month] = true
		assert.LessOrEqual(t, len(rev.Month), 4, "month label %q exceeds schema width", rev.Month)
	}
}

func TestDefaultFixturesUniqueIDs(t *testing.T) {
	fx := Default()

	seen := make(map[uuid.UUID]bool)
	for _, u := range fx.Users {
		assert.NotEqual(t, uuid.Nil, u.ID)
		assert.False(t, seen[u.ID])
		seen[u.ID] = true
	}
	for _, c := range fx.Customers {
		assert.NotEqual(t, uuid.Nil, c.ID)
		assert.False(t, seen[c.ID])
		seen[c.ID] = true
	}
}
