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

	"coupon-market/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedPassword is the plain-text password of every seeded account.
const SeedPassword = "password123"

var (
	seedHashOnce sync.Once
	seedHash     string
)

// bcrypt is deliberately slow; hash the shared test password once.
func seedPasswordHash(t *testing.T) string {
	t.Helper()
	seedHashOnce.Do(func() {
		hash, err := password.HashPassword(SeedPassword)
		require.NoError(t, err)
		seedHash = hash
	})
	return seedHash
}

func CreateTestCompany(t *testing.T, db DBLike, name, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO companies (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id",
		name, email, seedPasswordHash(t)).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestCustomer(t *testing.T, db DBLike, name, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO customers (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id",
		name, email, seedPasswordHash(t)).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestCoupon(t *testing.T, db DBLike, companyID int64, title string, amount int, startDate, endDate time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO coupons (company_id, title, type, start_date, end_date, price, amount, message)
		 VALUES ($1, $2, 'restaurants', $3, $4, 9.99, $5, 'seeded for tests') RETURNING id`,
		companyID, title, startDate, endDate, amount).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestPurchase(t *testing.T, db DBLike, customerID, couponID int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO purchases (customer_id, coupon_id) VALUES ($1, $2)", customerID, couponID)
	require.NoError(t, err)
}

func CountPurchases(t *testing.T, db DBLike, couponID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM purchases WHERE coupon_id = $1", couponID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CouponAmount(t *testing.T, db DBLike, couponID int64) int {
	t.Helper()

	var amount int
	err := db.QueryRow(context.Background(),
		"SELECT amount FROM coupons WHERE id = $1", couponID).Scan(&amount)
	require.NoError(t, err)
	return amount
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so every subtest starts from an empty database
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
