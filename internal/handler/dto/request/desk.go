package request

import "github.com/google/uuid"

type CreateDeskRequest struct {
	Code   string     `json:"code" binding:"required,max=32"`
	AreaID *uuid.UUID `json:"area_id,omitempty"`
}

type SetDeskBlockedRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}
