//go:build unit || e2e

package builder

import (
	"time"

	reqdto "deskbook/internal/handler/dto/request"
	"deskbook/internal/usecase/commands"
	"deskbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type DeskBuilder struct {
	ID        uuid.UUID
	Code      string
	AreaID    *uuid.UUID
	IsBlocked bool
}

func NewDeskBuilder() *DeskBuilder {
	areaID := uuid.New()
	return &DeskBuilder{
		ID:     uuid.New(),
		Code:   "A-01",
		AreaID: &areaID,
	}
}

func (d *DeskBuilder) With(mutate func(*DeskBuilder)) *DeskBuilder {
	mutate(d)
	return d
}

// Build methods
func (d *DeskBuilder) BuildDTO() reqdto.CreateDeskRequest {
	return reqdto.CreateDeskRequest{
		Code:   d.Code,
		AreaID: d.AreaID,
	}
}

func (d *DeskBuilder) BuildSnapshot() *commands.DeskSnapshot {
	return &commands.DeskSnapshot{
		ID:        d.ID,
		Code:      d.Code,
		AreaID:    d.AreaID,
		IsBlocked: d.IsBlocked,
	}
}

func (d *DeskBuilder) BuildReadModel() *queries.DeskView {
	now := time.Now()
	return &queries.DeskView{
		ID:        d.ID,
		Code:      d.Code,
		AreaID:    d.AreaID,
		IsBlocked: d.IsBlocked,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
