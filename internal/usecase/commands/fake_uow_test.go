//go:build unit

package commands_test

import (
	"context"
	"time"

	"coupon-market/internal/domain/company"
	"coupon-market/internal/domain/coupon"
	"coupon-market/internal/domain/customer"
	"coupon-market/internal/infra"
	"coupon-market/internal/infra/db"
	"coupon-market/internal/usecase/shared"
)

// fakeStore is an in-memory stand-in for the persistence layer. Every
// repository fake shares one store, and fakeUoW snapshots it before each
// transaction so a failing transaction leaves no writes behind.
type fakeStore struct {
	companies map[int64]accountRow
	customers map[int64]accountRow
	coupons   map[int64]shared.CouponSnapshot
	purchases map[purchaseKey]bool
	nextID    int64
}

type accountRow struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
}

type purchaseKey struct {
	CustomerID int64
	CouponID   int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		companies: map[int64]accountRow{},
		customers: map[int64]accountRow{},
		coupons:   map[int64]shared.CouponSnapshot{},
		purchases: map[purchaseKey]bool{},
	}
}

func (s *fakeStore) allocID() int64 {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	c.nextID = s.nextID
	for k, v := range s.companies {
		c.companies[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.coupons {
		c.coupons[k] = v
	}
	for k, v := range s.purchases {
		c.purchases[k] = v
	}
	return c
}

func (s *fakeStore) restore(from *fakeStore) {
	s.companies = from.companies
	s.customers = from.customers
	s.coupons = from.coupons
	s.purchases = from.purchases
	s.nextID = from.nextID
}

// Seed helpers

func (s *fakeStore) seedCompany(name, email string) int64 {
	id := s.allocID()
	s.companies[id] = accountRow{ID: id, Name: name, Email: email, PasswordHash: "hashed_password"}
	return id
}

func (s *fakeStore) seedCustomer(name, email string) int64 {
	id := s.allocID()
	s.customers[id] = accountRow{ID: id, Name: name, Email: email, PasswordHash: "hashed_password"}
	return id
}

func (s *fakeStore) seedCoupon(companyID int64, title string, amount int, endDate time.Time) int64 {
	id := s.allocID()
	s.coupons[id] = shared.CouponSnapshot{
		ID:        id,
		CompanyID: companyID,
		Title:     title,
		Type:      "restaurants",
		StartDate: endDate.AddDate(0, -1, 0),
		EndDate:   endDate,
		Price:     10,
		Amount:    amount,
	}
	return id
}

// fakeUoW

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) *fakeUoW {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	before := u.store.clone()
	if err := fn(ctx, &fakeTx{store: u.store}); err != nil {
		u.store.restore(before)
		return err
	}
	return nil
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Companies() shared.CompanyRepository { return &fakeCompanyRepo{store: t.store} }
func (t *fakeTx) Customers() shared.CustomerRepository {
	return &fakeCustomerRepo{store: t.store}
}
func (t *fakeTx) Coupons() shared.CouponRepository     { return &fakeCouponRepo{store: t.store} }
func (t *fakeTx) Purchases() shared.PurchaseRepository { return &fakePurchaseRepo{store: t.store} }
func (t *fakeTx) DB() db.DBTX                          { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// fakeCompanyRepo

type fakeCompanyRepo struct {
	store *fakeStore
}

func (r *fakeCompanyRepo) Create(_ context.Context, _ db.DBTX, c *company.Company) (int64, error) {
	id := r.store.allocID()
	r.store.companies[id] = accountRow{ID: id, Name: c.Name(), Email: c.Email(), PasswordHash: c.PasswordHash()}
	return id, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, _ db.DBTX, c *company.Company) error {
	if _, ok := r.store.companies[c.ID()]; !ok {
		return notFound("company not found")
	}
	r.store.companies[c.ID()] = accountRow{ID: c.ID(), Name: c.Name(), Email: c.Email(), PasswordHash: c.PasswordHash()}
	return nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, _ db.DBTX, id int64) error {
	if _, ok := r.store.companies[id]; !ok {
		return notFound("company not found")
	}
	delete(r.store.companies, id)
	for cid, snap := range r.store.coupons {
		if snap.CompanyID == id {
			delete(r.store.coupons, cid)
			for key := range r.store.purchases {
				if key.CouponID == cid {
					delete(r.store.purchases, key)
				}
			}
		}
	}
	return nil
}

func (r *fakeCompanyRepo) ExistsByName(_ context.Context, _ db.DBTX, name string) (bool, error) {
	for _, row := range r.store.companies {
		if row.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCompanyRepo) ExistsByEmail(_ context.Context, _ db.DBTX, email string) (bool, error) {
	for _, row := range r.store.companies {
		if row.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCompanyRepo) ExistsByNameExcluding(_ context.Context, _ db.DBTX, name string, excludeID int64) (bool, error) {
	for _, row := range r.store.companies {
		if row.Name == name && row.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCompanyRepo) ExistsByEmailExcluding(_ context.Context, _ db.DBTX, email string, excludeID int64) (bool, error) {
	for _, row := range r.store.companies {
		if row.Email == email && row.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCompanyRepo) FindCredentialsByName(_ context.Context, _ db.DBTX, name string) (*shared.CredentialsSnapshot, error) {
	for _, row := range r.store.companies {
		if row.Name == name {
			return &shared.CredentialsSnapshot{ID: row.ID, Name: row.Name, Email: row.Email, PasswordHash: row.PasswordHash}, nil
		}
	}
	return nil, notFound("company not found")
}

// fakeCustomerRepo

type fakeCustomerRepo struct {
	store *fakeStore
}

func (r *fakeCustomerRepo) Create(_ context.Context, _ db.DBTX, c *customer.Customer) (int64, error) {
	id := r.store.allocID()
	r.store.customers[id] = accountRow{ID: id, Name: c.Name(), Email: c.Email(), PasswordHash: c.PasswordHash()}
	return id, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, _ db.DBTX, c *customer.Customer) error {
	if _, ok := r.store.customers[c.ID()]; !ok {
		return notFound("customer not found")
	}
	r.store.customers[c.ID()] = accountRow{ID: c.ID(), Name: c.Name(), Email: c.Email(), PasswordHash: c.PasswordHash()}
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, _ db.DBTX, id int64) error {
	if _, ok := r.store.customers[id]; !ok {
		return notFound("customer not found")
	}
	delete(r.store.customers, id)
	for key := range r.store.purchases {
		if key.CustomerID == id {
			delete(r.store.purchases, key)
		}
	}
	return nil
}

func (r *fakeCustomerRepo) ExistsByName(_ context.Context, _ db.DBTX, name string) (bool, error) {
	for _, row := range r.store.customers {
		if row.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCustomerRepo) ExistsByEmail(_ context.Context, _ db.DBTX, email string) (bool, error) {
	for _, row := range r.store.customers {
		if row.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCustomerRepo) ExistsByNameExcluding(_ context.Context, _ db.DBTX, name string, excludeID int64) (bool, error) {
	for _, row := range r.store.customers {
		if row.Name == name && row.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCustomerRepo) ExistsByEmailExcluding(_ context.Context, _ db.DBTX, email string, excludeID int64) (bool, error) {
	for _, row := range r.store.customers {
		if row.Email == email && row.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCustomerRepo) FindCredentialsByEmail(_ context.Context, _ db.DBTX, email string) (*shared.CredentialsSnapshot, error) {
	for _, row := range r.store.customers {
		if row.Email == email {
			return &shared.CredentialsSnapshot{ID: row.ID, Name: row.Name, Email: row.Email, PasswordHash: row.PasswordHash}, nil
		}
	}
	return nil, notFound("customer not found")
}

// fakeCouponRepo

type fakeCouponRepo struct {
	store *fakeStore
}

func (r *fakeCouponRepo) Create(_ context.Context, _ db.DBTX, c *coupon.Coupon) (int64, error) {
	if _, ok := r.store.companies[c.CompanyID()]; !ok {
		return 0, infra.WrapRepoErr("coupon company missing", nil, infra.KindForeignKeyViolated)
	}
	id := r.store.allocID()
	r.store.coupons[id] = shared.CouponSnapshot{
		ID:        id,
		CompanyID: c.CompanyID(),
		Title:     c.Title(),
		Type:      c.Type().String(),
		StartDate: c.StartDate(),
		EndDate:   c.EndDate(),
		Price:     c.Price(),
		Amount:    c.Amount(),
	}
	return id, nil
}

func (r *fakeCouponRepo) Update(_ context.Context, _ db.DBTX, c *coupon.Coupon) error {
	snap, ok := r.store.coupons[c.ID()]
	if !ok {
		return notFound("coupon not found")
	}
	snap.Title = c.Title()
	snap.Type = c.Type().String()
	snap.StartDate = c.StartDate()
	snap.EndDate = c.EndDate()
	snap.Price = c.Price()
	snap.Amount = c.Amount()
	r.store.coupons[c.ID()] = snap
	return nil
}

func (r *fakeCouponRepo) Delete(_ context.Context, _ db.DBTX, id int64) error {
	if _, ok := r.store.coupons[id]; !ok {
		return notFound("coupon not found")
	}
	delete(r.store.coupons, id)
	for key := range r.store.purchases {
		if key.CouponID == id {
			delete(r.store.purchases, key)
		}
	}
	return nil
}

func (r *fakeCouponRepo) ExistsByTitle(_ context.Context, _ db.DBTX, title string) (bool, error) {
	for _, snap := range r.store.coupons {
		if snap.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCouponRepo) ExistsByTitleExcluding(_ context.Context, _ db.DBTX, title string, excludeID int64) (bool, error) {
	for _, snap := range r.store.coupons {
		if snap.Title == title && snap.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCouponRepo) FindForUpdate(_ context.Context, _ db.DBTX, id int64) (*shared.CouponSnapshot, error) {
	snap, ok := r.store.coupons[id]
	if !ok {
		return nil, notFound("coupon not found")
	}
	return &snap, nil
}

func (r *fakeCouponRepo) AdjustAmount(_ context.Context, _ db.DBTX, id int64, delta int) error {
	snap, ok := r.store.coupons[id]
	if !ok {
		return notFound("coupon not found")
	}
	snap.Amount += delta
	r.store.coupons[id] = snap
	return nil
}

func (r *fakeCouponRepo) DeleteExpired(_ context.Context, _ db.DBTX, cutoff time.Time) (int64, error) {
	var removed int64
	for id, snap := range r.store.coupons {
		if !snap.EndDate.After(cutoff) {
			delete(r.store.coupons, id)
			for key := range r.store.purchases {
				if key.CouponID == id {
					delete(r.store.purchases, key)
				}
			}
			removed++
		}
	}
	return removed, nil
}

// fakePurchaseRepo

type fakePurchaseRepo struct {
	store *fakeStore
}

func (r *fakePurchaseRepo) Insert(_ context.Context, _ db.DBTX, customerID, couponID int64) error {
	if _, ok := r.store.customers[customerID]; !ok {
		return infra.WrapRepoErr("purchase customer missing", nil, infra.KindForeignKeyViolated)
	}
	if _, ok := r.store.coupons[couponID]; !ok {
		return infra.WrapRepoErr("purchase coupon missing", nil, infra.KindForeignKeyViolated)
	}
	key := purchaseKey{CustomerID: customerID, CouponID: couponID}
	if r.store.purchases[key] {
		return infra.WrapRepoErr("purchase already exists", nil, infra.KindDuplicateKey)
	}
	r.store.purchases[key] = true
	return nil
}

func (r *fakePurchaseRepo) Delete(_ context.Context, _ db.DBTX, customerID, couponID int64) (bool, error) {
	key := purchaseKey{CustomerID: customerID, CouponID: couponID}
	if !r.store.purchases[key] {
		return false, nil
	}
	delete(r.store.purchases, key)
	return true, nil
}

func (r *fakePurchaseRepo) Exists(_ context.Context, _ db.DBTX, customerID, couponID int64) (bool, error) {
	return r.store.purchases[purchaseKey{CustomerID: customerID, CouponID: couponID}], nil
}
