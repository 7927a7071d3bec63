package response

import (
	"coupon-market/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CompanyResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromCompanyView(v *queries.CompanyView) *CompanyResponse {
	var resp CompanyResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCompanyList(views []*queries.CompanyView) []*CompanyResponse {
	res := make([]*CompanyResponse, len(views))
	for i, v := range views {
		res[i] = FromCompanyView(v)
	}
	return res
}
