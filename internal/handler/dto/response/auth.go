package response

import "github.com/google/uuid"

type LoginResponse struct {
	UserID      uuid.UUID `json:"userId"`
	Role        string    `json:"role"`
	AccessToken string    `json:"accessToken"`
}
