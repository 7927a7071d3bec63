package response

import (
	"coupon-market/internal/domain/validation"
	"coupon-market/internal/usecase/queries"
)

type CouponResponse struct {
	ID        int64   `json:"id"`
	CompanyID int64   `json:"company_id"`
	Title     string  `json:"title"`
	Type      string  `json:"type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Price     float64 `json:"price"`
	Amount    int     `json:"amount"`
	Message   string  `json:"message"`
	CreatedAt int64   `json:"created_at"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	return &CouponResponse{
		ID:        v.ID,
		CompanyID: v.CompanyID,
		Title:     v.Title,
		Type:      v.Type,
		StartDate: v.StartDate.Format(validation.DateLayout),
		EndDate:   v.EndDate.Format(validation.DateLayout),
		Price:     v.Price,
		Amount:    v.Amount,
		Message:   v.Message,
		CreatedAt: v.CreatedAt.Unix(),
	}
}

func FromCouponList(views []*queries.CouponView) []*CouponResponse {
	res := make([]*CouponResponse, len(views))
	for i, v := range views {
		res[i] = FromCouponView(v)
	}
	return res
}
