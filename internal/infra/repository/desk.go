package repository

import (
	"context"

	"deskbook/internal/infra"
	"deskbook/internal/pkg/pgconv"
	"deskbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DeskRepository struct {
	pool *pgxpool.Pool
}

func NewDeskRepository(pool *pgxpool.Pool) *DeskRepository {
	return &DeskRepository{pool: pool}
}

func (r *DeskRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.DeskSnapshot, error) {
	var (
		snap   commands.DeskSnapshot
		areaID pgtype.UUID
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, code, area_id, is_blocked FROM desks WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.Code, &areaID, &snap.IsBlocked)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("desk not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find desk by ID", err)
	}
	snap.AreaID = pgconv.UUIDPtrFromPgtype(areaID)
	return &snap, nil
}

func (r *DeskRepository) Create(ctx context.Context, d *commands.DeskSnapshot) (uuid.UUID, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO desks (id, code, area_id, is_blocked) VALUES ($1, $2, $3, $4)`,
		d.ID, d.Code, pgconv.UUIDPtrToPgtype(d.AreaID), d.IsBlocked)
	if err != nil {
		return uuid.Nil, classifyPgError("failed to create desk", err)
	}
	return d.ID, nil
}

func (r *DeskRepository) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE desks SET is_blocked = $2, updated_at = now() WHERE id = $1`, id, blocked)
	if err != nil {
		return infra.WrapRepoErr("failed to update desk blocked flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("desk not found", nil, infra.KindNotFound)
	}
	return nil
}
