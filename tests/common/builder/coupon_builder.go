//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "coupon-market/internal/domain/coupon"
	"coupon-market/internal/domain/validation"
	reqdto "coupon-market/internal/handler/dto/request"
	"coupon-market/internal/usecase/queries"
	"coupon-market/internal/usecase/shared"
)

type CouponBuilder struct {
	ID        int64
	CompanyID int64
	Title     string
	Type      string
	StartDate string
	EndDate   string
	Price     float64
	Amount    int
	Message   string
	Now       time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	return &CouponBuilder{
		ID:        1,
		CompanyID: 1,
		Title:     "Summer Discount",
		Type:      "restaurants",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-30",
		Price:     19.90,
		Amount:    100,
		Message:   "Valid at all branches",
		Now:       now,
	}
}

func (c *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CouponBuilder) BuildDraft() domcoupon.Draft {
	return domcoupon.Draft{
		CompanyID: c.CompanyID,
		Title:     c.Title,
		Type:      domcoupon.Type(c.Type),
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		Price:     c.Price,
		Amount:    c.Amount,
		Message:   c.Message,
	}
}

func (c *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.New(c.BuildDraft(), c.Now)
}

func (c *CouponBuilder) BuildRequestDTO() reqdto.CouponRequest {
	return reqdto.CouponRequest{
		CompanyID: c.CompanyID,
		Title:     c.Title,
		Type:      c.Type,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		Price:     c.Price,
		Amount:    c.Amount,
		Message:   c.Message,
	}
}

func (c *CouponBuilder) BuildView() *queries.CouponView {
	start, _ := validation.ParseDate(c.StartDate)
	end, _ := validation.ParseDate(c.EndDate)
	return &queries.CouponView{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Title:     c.Title,
		Type:      c.Type,
		StartDate: start,
		EndDate:   end,
		Price:     c.Price,
		Amount:    c.Amount,
		Message:   c.Message,
		CreatedAt: c.Now,
	}
}

func (c *CouponBuilder) BuildSnapshot() *shared.CouponSnapshot {
	start, _ := validation.ParseDate(c.StartDate)
	end, _ := validation.ParseDate(c.EndDate)
	return &shared.CouponSnapshot{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Title:     c.Title,
		Type:      c.Type,
		StartDate: start,
		EndDate:   end,
		Price:     c.Price,
		Amount:    c.Amount,
	}
}

// Fluent builder methods
func (c *CouponBuilder) WithID(id int64) *CouponBuilder {
	c.ID = id
	return c
}

func (c *CouponBuilder) WithCompanyID(companyID int64) *CouponBuilder {
	c.CompanyID = companyID
	return c
}

func (c *CouponBuilder) WithTitle(title string) *CouponBuilder {
	c.Title = title
	return c
}

func (c *CouponBuilder) WithType(t string) *CouponBuilder {
	c.Type = t
	return c
}

func (c *CouponBuilder) WithStartDate(date string) *CouponBuilder {
	c.StartDate = date
	return c
}

func (c *CouponBuilder) WithEndDate(date string) *CouponBuilder {
	c.EndDate = date
	return c
}

func (c *CouponBuilder) WithPrice(price float64) *CouponBuilder {
	c.Price = price
	return c
}

func (c *CouponBuilder) WithAmount(amount int) *CouponBuilder {
	c.Amount = amount
	return c
}

func (c *CouponBuilder) WithMessage(message string) *CouponBuilder {
	c.Message = message
	return c
}

func (c *CouponBuilder) WithNow(now time.Time) *CouponBuilder {
	c.Now = now
	return c
}

func (c *CouponBuilder) AsOutOfStock() *CouponBuilder {
	c.Amount = 0
	return c
}

func (c *CouponBuilder) AsExpired() *CouponBuilder {
	c.StartDate = "2026-05-01"
	c.EndDate = "2026-05-15"
	return c
}
