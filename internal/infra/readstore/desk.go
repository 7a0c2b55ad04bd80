package readstore

import (
	"context"

	"deskbook/internal/infra"
	"deskbook/internal/pkg/pgconv"
	"deskbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DeskReadStore struct {
	pool *pgxpool.Pool
}

func NewDeskReadStore(pool *pgxpool.Pool) *DeskReadStore {
	return &DeskReadStore{pool: pool}
}

const deskViewSQL = `SELECT id, code, area_id, is_blocked, created_at, updated_at FROM desks`

func (r *DeskReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.DeskView, error) {
	row := r.pool.QueryRow(ctx, deskViewSQL+` WHERE id = $1`, id)
	view, err := scanDeskView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("desk not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find desk view by ID", err)
	}
	return view, nil
}

func (r *DeskReadStore) FindAllViews(ctx context.Context) ([]*queries.DeskView, error) {
	rows, err := r.pool.Query(ctx, deskViewSQL+` ORDER BY code`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list desks", err)
	}
	defer rows.Close()

	var views []*queries.DeskView
	for rows.Next() {
		view, scanErr := scanDeskView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan desk row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate desk rows", err)
	}
	return views, nil
}

func scanDeskView(row pgx.Row) (*queries.DeskView, error) {
	var (
		view      queries.DeskView
		areaID    pgtype.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &view.Code, &areaID, &view.IsBlocked, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	view.AreaID = pgconv.UUIDPtrFromPgtype(areaID)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
