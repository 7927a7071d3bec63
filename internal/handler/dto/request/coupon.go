package request

import "coupon-market/internal/domain/coupon"

// Dates stay strings here; the domain parses them and reports malformed
// values as field errors next to the other violations.
type CouponRequest struct {
	CompanyID int64   `json:"company_id"`
	Title     string  `json:"title"`
	Type      string  `json:"type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Price     float64 `json:"price"`
	Amount    int     `json:"amount"`
	Message   string  `json:"message"`
}

func (r *CouponRequest) ToDraft() coupon.Draft {
	return coupon.Draft{
		CompanyID: r.CompanyID,
		Title:     r.Title,
		Type:      coupon.Type(r.Type),
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Price:     r.Price,
		Amount:    r.Amount,
		Message:   r.Message,
	}
}
