package response

import "coupon-market/internal/usecase/commands"

type LoginResponse struct {
	Token   string `json:"token"`
	ActorID int64  `json:"actor_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:   r.Token,
		ActorID: r.ActorID,
		Name:    r.Name,
		Role:    r.Role.String(),
	}
}
