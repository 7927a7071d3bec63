package response

import (
	"coupon-market/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CustomerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromCustomerView(v *queries.CustomerView) *CustomerResponse {
	var resp CustomerResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCustomerList(views []*queries.CustomerView) []*CustomerResponse {
	res := make([]*CustomerResponse, len(views))
	for i, v := range views {
		res[i] = FromCustomerView(v)
	}
	return res
}
