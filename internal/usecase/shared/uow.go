package shared

import (
	"context"
	"time"

	"coupon-market/internal/domain/company"
	"coupon-market/internal/domain/coupon"
	"coupon-market/internal/domain/customer"
	"coupon-market/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Companies() CompanyRepository
	Customers() CustomerRepository
	Coupons() CouponRepository
	Purchases() PurchaseRepository
	DB() db.DBTX
}

type CompanyRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *company.Company) (int64, error)
	Update(ctx context.Context, tx db.DBTX, c *company.Company) error
	Delete(ctx context.Context, tx db.DBTX, id int64) error
	ExistsByName(ctx context.Context, tx db.DBTX, name string) (bool, error)
	ExistsByEmail(ctx context.Context, tx db.DBTX, email string) (bool, error)
	ExistsByNameExcluding(ctx context.Context, tx db.DBTX, name string, excludeID int64) (bool, error)
	ExistsByEmailExcluding(ctx context.Context, tx db.DBTX, email string, excludeID int64) (bool, error)
	FindCredentialsByName(ctx context.Context, tx db.DBTX, name string) (*CredentialsSnapshot, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (int64, error)
	Update(ctx context.Context, tx db.DBTX, c *customer.Customer) error
	Delete(ctx context.Context, tx db.DBTX, id int64) error
	ExistsByName(ctx context.Context, tx db.DBTX, name string) (bool, error)
	ExistsByEmail(ctx context.Context, tx db.DBTX, email string) (bool, error)
	ExistsByNameExcluding(ctx context.Context, tx db.DBTX, name string, excludeID int64) (bool, error)
	ExistsByEmailExcluding(ctx context.Context, tx db.DBTX, email string, excludeID int64) (bool, error)
	FindCredentialsByEmail(ctx context.Context, tx db.DBTX, email string) (*CredentialsSnapshot, error)
}

type CouponRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *coupon.Coupon) (int64, error)
	Update(ctx context.Context, tx db.DBTX, c *coupon.Coupon) error
	Delete(ctx context.Context, tx db.DBTX, id int64) error
	ExistsByTitle(ctx context.Context, tx db.DBTX, title string) (bool, error)
	ExistsByTitleExcluding(ctx context.Context, tx db.DBTX, title string, excludeID int64) (bool, error)
	// FindForUpdate locks the coupon row for the duration of the transaction.
	FindForUpdate(ctx context.Context, tx db.DBTX, id int64) (*CouponSnapshot, error)
	AdjustAmount(ctx context.Context, tx db.DBTX, id int64, delta int) error
	DeleteExpired(ctx context.Context, tx db.DBTX, cutoff time.Time) (int64, error)
}

type PurchaseRepository interface {
	Insert(ctx context.Context, tx db.DBTX, customerID, couponID int64) error
	// Delete reports whether a purchase row actually existed.
	Delete(ctx context.Context, tx db.DBTX, customerID, couponID int64) (bool, error)
	Exists(ctx context.Context, tx db.DBTX, customerID, couponID int64) (bool, error)
}
