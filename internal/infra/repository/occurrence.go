package repository

import (
	"context"
	"log/slog"

	"deskbook/internal/domain/booking"
	"deskbook/internal/infra"
	"deskbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertOccurrenceSQL = `
	INSERT INTO occurrences (id, desk_id, booked_on, owner_label, is_recurring, recurring_days)
	VALUES ($1, $2, $3, $4, $5, $6)`

type OccurrenceRepository struct {
	pool *pgxpool.Pool
}

func NewOccurrenceRepository(pool *pgxpool.Pool) *OccurrenceRepository {
	return &OccurrenceRepository{pool: pool}
}

// InsertMany writes the whole batch inside one transaction. The unique
// constraint on (desk_id, booked_on) is the final authority on invariant
// "one occurrence per desk per date": a violation rolls back every row.
func (r *OccurrenceRepository) InsertMany(ctx context.Context, occs []*booking.Occurrence) ([]uuid.UUID, error) {
	if len(occs) == 0 {
		return nil, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer rollback(ctx, tx)

	batch := &pgx.Batch{}
	ids := make([]uuid.UUID, len(occs))
	for i, occ := range occs {
		ids[i] = occ.ID()
		batch.Queue(insertOccurrenceSQL,
			occ.ID(),
			occ.DeskID(),
			pgconv.DateToPgtype(occ.Date().Time()),
			occ.Owner().String(),
			occ.IsRecurring(),
			occ.RecurringDays().StorageValues(),
		)
	}

	results := tx.SendBatch(ctx, batch)
	var batchErr error
	for range occs {
		if _, execErr := results.Exec(); execErr != nil && batchErr == nil {
			batchErr = execErr
		}
	}
	if closeErr := results.Close(); closeErr != nil && batchErr == nil {
		batchErr = closeErr
	}
	if batchErr != nil {
		return nil, classifyPgError("failed to insert occurrence batch", batchErr)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, classifyPgError("failed to commit occurrence batch", err)
	}
	return ids, nil
}

// ReplaceOnDate deletes exactly the row the caller confirmed against and
// inserts the replacement in the same transaction. A vanished row means
// another writer got there first.
func (r *OccurrenceRepository) ReplaceOnDate(ctx context.Context, occ *booking.Occurrence, replacedID uuid.UUID) (uuid.UUID, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer rollback(ctx, tx)

	tag, err := tx.Exec(ctx,
		`DELETE FROM occurrences WHERE id = $1 AND desk_id = $2 AND booked_on = $3`,
		replacedID, occ.DeskID(), pgconv.DateToPgtype(occ.Date().Time()))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to delete replaced occurrence", err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, infra.WrapRepoErr("replaced occurrence no longer exists", nil, infra.KindNotFound)
	}

	if _, err := tx.Exec(ctx, insertOccurrenceSQL,
		occ.ID(),
		occ.DeskID(),
		pgconv.DateToPgtype(occ.Date().Time()),
		occ.Owner().String(),
		occ.IsRecurring(),
		occ.RecurringDays().StorageValues(),
	); err != nil {
		return uuid.Nil, classifyPgError("failed to insert replacement occurrence", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, classifyPgError("failed to commit replacement", err)
	}
	return occ.ID(), nil
}

// DeleteMany removes the listed rows in one statement.
func (r *OccurrenceRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM occurrences WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete occurrences", err)
	}
	return tag.RowsAffected(), nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
		slog.Warn("failed to rollback transaction", "error", err)
	}
}
