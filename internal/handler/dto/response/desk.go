package response

import (
	"time"

	"deskbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type DeskResponse struct {
	ID        uuid.UUID  `json:"id"`
	Code      string     `json:"code"`
	AreaID    *uuid.UUID `json:"areaId,omitempty"`
	IsBlocked bool       `json:"isBlocked"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func FromDeskView(view *queries.DeskView) *DeskResponse {
	return &DeskResponse{
		ID:        view.ID,
		Code:      view.Code,
		AreaID:    view.AreaID,
		IsBlocked: view.IsBlocked,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}
