package commands

import (
	"context"

	"deskbook/internal/domain/desk"
	"deskbook/internal/infra"
	"deskbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDesk       = errs.New("invalid desk")
	ErrDuplicateDeskCode = errs.New("duplicate desk code")
)

type CreateDeskParams struct {
	Code   string
	AreaID *uuid.UUID
}

type DeskCommands interface {
	Create(ctx context.Context, params CreateDeskParams) (uuid.UUID, error)
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error
}

type deskCommandsImpl struct {
	deskRepo DeskRepository
}

func NewDeskCommands(deskRepo DeskRepository) DeskCommands {
	return &deskCommandsImpl{deskRepo: deskRepo}
}

func (d *deskCommandsImpl) Create(ctx context.Context, params CreateDeskParams) (uuid.UUID, error) {
	entity, err := desk.NewDesk(params.Code, params.AreaID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidDesk)
	}

	snap := &DeskSnapshot{
		ID:        entity.ID(),
		Code:      entity.Code(),
		AreaID:    entity.AreaID(),
		IsBlocked: entity.IsBlocked(),
	}
	id, err := d.deskRepo.Create(ctx, snap)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateDeskCode
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (d *deskCommandsImpl) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	if err := d.deskRepo.SetBlocked(ctx, id, blocked); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDeskNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
