package request

import "coupon-market/internal/domain/customer"

type CustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *CustomerRequest) ToProfile() customer.Profile {
	return customer.Profile{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}
