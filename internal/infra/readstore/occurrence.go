package readstore

import (
	"context"
	"time"

	"deskbook/internal/domain/booking"
	"deskbook/internal/infra"
	"deskbook/internal/pkg/pgconv"
	"deskbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const occurrenceColumns = `id, desk_id, booked_on, owner_label, is_recurring, recurring_days`

// OccurrenceReadStore serves both faces of the reservation store's read
// contract: domain rows for the scheduling engine and views for the API.
type OccurrenceReadStore struct {
	pool *pgxpool.Pool
}

func NewOccurrenceReadStore(pool *pgxpool.Pool) *OccurrenceReadStore {
	return &OccurrenceReadStore{pool: pool}
}

func (r *OccurrenceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Occurrence, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+occurrenceColumns+` FROM occurrences WHERE id = $1`, id)
	occ, err := scanOccurrence(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("occurrence not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find occurrence by ID", err)
	}
	return occ, nil
}

func (r *OccurrenceReadStore) FindByDeskAndDate(ctx context.Context, deskID uuid.UUID, date booking.Date) (*booking.Occurrence, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+occurrenceColumns+` FROM occurrences WHERE desk_id = $1 AND booked_on = $2`,
		deskID, pgconv.DateToPgtype(date.Time()))
	occ, err := scanOccurrence(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("occurrence not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find occurrence by desk and date", err)
	}
	return occ, nil
}

func (r *OccurrenceReadStore) FindByDeskAndDateRange(ctx context.Context, deskID uuid.UUID, from, to *booking.Date) ([]*booking.Occurrence, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+occurrenceColumns+` FROM occurrences
		 WHERE desk_id = $1
		   AND ($2::date IS NULL OR booked_on >= $2)
		   AND ($3::date IS NULL OR booked_on <= $3)
		 ORDER BY booked_on`,
		deskID, datePtrToPgtype(from), datePtrToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan occurrences by desk", err)
	}
	defer rows.Close()

	var occs []*booking.Occurrence
	for rows.Next() {
		occ, scanErr := scanOccurrence(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan occurrence row", scanErr)
		}
		occs = append(occs, occ)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occurrence rows", err)
	}
	return occs, nil
}

func (r *OccurrenceReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.OccurrenceView, error) {
	row := r.pool.QueryRow(ctx, viewSelectSQL+` WHERE o.id = $1`, id)
	view, err := scanOccurrenceView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("occurrence not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find occurrence view by ID", err)
	}
	return view, nil
}

func (r *OccurrenceReadStore) FindViewsByDesk(ctx context.Context, deskID uuid.UUID, from, to *time.Time) ([]*queries.OccurrenceView, error) {
	rows, err := r.pool.Query(ctx,
		viewSelectSQL+`
		 WHERE o.desk_id = $1
		   AND ($2::date IS NULL OR o.booked_on >= $2)
		   AND ($3::date IS NULL OR o.booked_on <= $3)
		 ORDER BY o.booked_on`,
		deskID, timePtrToDate(from), timePtrToDate(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occurrence views by desk", err)
	}
	defer rows.Close()
	return collectViews(rows)
}

func (r *OccurrenceReadStore) FindViewsByOwner(ctx context.Context, owner string, from *time.Time) ([]*queries.OccurrenceView, error) {
	rows, err := r.pool.Query(ctx,
		viewSelectSQL+`
		 WHERE o.owner_label = $1
		   AND ($2::date IS NULL OR o.booked_on >= $2)
		 ORDER BY o.booked_on`,
		owner, timePtrToDate(from))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occurrence views by owner", err)
	}
	defer rows.Close()
	return collectViews(rows)
}

const viewSelectSQL = `
	SELECT o.id, o.desk_id, d.code, o.booked_on, o.owner_label, o.is_recurring, o.recurring_days, o.created_at
	FROM occurrences o
	JOIN desks d ON d.id = o.desk_id`

func scanOccurrence(row pgx.Row) (*booking.Occurrence, error) {
	var (
		id            uuid.UUID
		deskID        uuid.UUID
		bookedOn      pgtype.Date
		owner         string
		isRecurring   bool
		recurringDays []int32
	)
	if err := row.Scan(&id, &deskID, &bookedOn, &owner, &isRecurring, &recurringDays); err != nil {
		return nil, err
	}

	days, err := booking.WeekdaySetFromStorage(recurringDays)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructOccurrence(
		id,
		deskID,
		booking.DateOf(pgconv.DateFromPgtype(bookedOn)),
		booking.ReconstructOwnerLabel(owner),
		isRecurring,
		days,
	), nil
}

func scanOccurrenceView(row pgx.Row) (*queries.OccurrenceView, error) {
	var (
		view          queries.OccurrenceView
		bookedOn      pgtype.Date
		recurringDays []int32
		createdAt     pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &view.DeskID, &view.DeskCode, &bookedOn, &view.Owner, &view.IsRecurring, &recurringDays, &createdAt); err != nil {
		return nil, err
	}
	view.BookedOn = pgconv.DateFromPgtype(bookedOn)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	days, err := booking.WeekdaySetFromStorage(recurringDays)
	if err != nil {
		return nil, err
	}
	if !days.IsEmpty() {
		view.RecurringDays = days.Indices()
	}
	return &view, nil
}

func collectViews(rows pgx.Rows) ([]*queries.OccurrenceView, error) {
	var views []*queries.OccurrenceView
	for rows.Next() {
		view, err := scanOccurrenceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan occurrence view row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occurrence view rows", err)
	}
	return views, nil
}

func datePtrToPgtype(d *booking.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{Valid: false}
	}
	return pgconv.DateToPgtype(d.Time())
}

func timePtrToDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{Valid: false}
	}
	return pgconv.DateToPgtype(*t)
}
