package request

type CompanyLoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type CustomerLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
