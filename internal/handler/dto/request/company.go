package request

import "coupon-market/internal/domain/company"

// Field rules are enforced by the domain layer so all violations can be
// reported together; binding only rejects malformed JSON.
type CompanyRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *CompanyRequest) ToProfile() company.Profile {
	return company.Profile{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}
