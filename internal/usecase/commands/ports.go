package commands

import (
	"context"
	"time"

	"deskbook/internal/domain/booking"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type DeskSnapshot struct {
	ID        uuid.UUID
	Code      string
	AreaID    *uuid.UUID
	IsBlocked bool
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

// OccurrenceRepository is the write side of the reservation store. Each
// method is one atomic unit: the caller never observes a partially applied
// batch.
type OccurrenceRepository interface {
	// InsertMany persists the batch in a single transaction. A uniqueness
	// collision on (desk, date) fails the whole batch and surfaces as
	// KindDuplicateKey; nothing is persisted.
	InsertMany(ctx context.Context, occs []*booking.Occurrence) ([]uuid.UUID, error)
	// ReplaceOnDate deletes the occurrence identified by replacedID and
	// inserts occ in one transaction. If the row no longer exists (another
	// writer moved first) the operation fails with KindDuplicateKey.
	ReplaceOnDate(ctx context.Context, occ *booking.Occurrence, replacedID uuid.UUID) (uuid.UUID, error)
	// DeleteMany removes the listed rows as one batch and reports how many
	// actually existed.
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// OccurrenceReads is the lookup contract the engine needs from the store:
// point lookups and range scans by desk.
type OccurrenceReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Occurrence, error)
	FindByDeskAndDate(ctx context.Context, deskID uuid.UUID, date booking.Date) (*booking.Occurrence, error)
	// FindByDeskAndDateRange scans [from, to] for one desk; a nil bound
	// leaves that side open. One range scan serves a whole classification
	// pass instead of a point query per candidate date.
	FindByDeskAndDateRange(ctx context.Context, deskID uuid.UUID, from, to *booking.Date) ([]*booking.Occurrence, error)
}

type DeskRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DeskSnapshot, error)
	Create(ctx context.Context, d *DeskSnapshot) (uuid.UUID, error)
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}
