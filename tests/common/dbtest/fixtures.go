//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ShopFixture describes a shop and the settings the sync engine reads for it.
type ShopFixture struct {
	ID         string
	Domain     string
	Enabled    bool
	Brands     []string
	Categories map[string]string // retailer id -> storefront id
	Margin     float64
}

func DefaultShop(id string) ShopFixture {
	return ShopFixture{
		ID:         id,
		Domain:     id + ".myshopify.com",
		Enabled:    true,
		Brands:     []string{"Acme"},
		Categories: map[string]string{"cat-shoes": "gid://shopify/TaxonomyCategory/aa-8"},
		Margin:     1.2,
	}
}

func CreateTestShop(t *testing.T, db DBLike, f ShopFixture) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO shops (id, domain, access_token, retailer_api_key, enabled)
		VALUES ($1, $2, 'shpat_test', 'retailer-key', $3)`, f.ID, f.Domain, f.Enabled)
	require.NoError(t, err)

	for _, brand := range f.Brands {
		_, err = db.Exec(ctx, "INSERT INTO brand_filters (shop_id, brand) VALUES ($1, $2)", f.ID, brand)
		require.NoError(t, err)
	}
	for retailerID, storefrontID := range f.Categories {
		_, err = db.Exec(ctx, `INSERT INTO category_mappings (shop_id, retailer_id, drop_shipper_id, margin)
			VALUES ($1, $2, $3, $4)`, f.ID, retailerID, storefrontID, f.Margin)
		require.NoError(t, err)
	}
	_, err = db.Exec(ctx, "INSERT INTO general_settings (shop_id, currency) VALUES ($1, 'EUR')", f.ID)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every table except the migration ledger
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
