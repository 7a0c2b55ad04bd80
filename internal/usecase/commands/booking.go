package commands

import (
	"context"
	"log/slog"
	"time"

	"deskbook/internal/domain/booking"
	"deskbook/internal/infra"
	"deskbook/internal/pkg/clock"
	"deskbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDeskNotFound            = errs.New("desk not found")
	ErrDeskBlocked             = errs.New("desk is blocked")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrEmptyWeekdaySet         = errs.New("weekday set cannot be empty")
	ErrDateInPast              = errs.New("date is in the past")
	ErrNoBookableDates         = errs.New("request expands to no bookable dates")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// BookingPolicy carries the locale and horizon the engine expands against.
type BookingPolicy struct {
	HorizonWeeks int
	Location     *time.Location
}

type CreateBookingParams struct {
	DeskID    uuid.UUID
	Owner     string
	Start     booking.Date
	End       *booking.Date // recurring only, optional
	Recurring bool
	Days      []int // recurring only, 0=Monday ... 4=Friday
}

type CreateBookingResult struct {
	CommittedIDs        []uuid.UUID
	Accepted            []booking.Date
	IndividualConflicts []booking.IndividualConflict
	RecurringConflicts  []booking.RecurringConflict
}

func (r *CreateBookingResult) Committed() bool {
	return len(r.CommittedIDs) > 0
}

type ReplaceBookingParams struct {
	DeskID uuid.UUID
	Owner  string
	Date   booking.Date
	// ReplacedID is the occurrence the caller confirmed to overwrite. The
	// replace fails if that exact row is gone by commit time, so a slot
	// taken by another writer in the meantime is never silently clobbered.
	ReplacedID uuid.UUID
}

type CancelBookingParams struct {
	OccurrenceID uuid.UUID
	Mode         booking.CancelMode
	Days         []int // partial mode only, 0=Monday ... 4=Friday
}

type CancelBookingResult struct {
	DeletedCount int
	DeletedIDs   []uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error)
	Replace(ctx context.Context, params ReplaceBookingParams) (*CreateBookingResult, error)
	Cancel(ctx context.Context, params CancelBookingParams) (*CancelBookingResult, error)
}

type bookingCommandsImpl struct {
	occurrenceRepo OccurrenceRepository
	occurrenceRead OccurrenceReads
	deskRepo       DeskRepository
	policy         BookingPolicy
	clock          clock.Clock
}

func NewBookingCommands(
	occurrenceRepo OccurrenceRepository,
	occurrenceRead OccurrenceReads,
	deskRepo DeskRepository,
	policy BookingPolicy,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		occurrenceRepo: occurrenceRepo,
		occurrenceRead: occurrenceRead,
		deskRepo:       deskRepo,
		policy:         policy,
		clock:          clk,
	}
}

func (b *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error) {
	owner, err := booking.NewOwnerLabel(params.Owner)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := b.ensureBookableDesk(ctx, params.DeskID); err != nil {
		return nil, err
	}

	today := b.today()

	if !params.Recurring {
		return b.createIndividual(ctx, params.DeskID, owner, params.Start, today)
	}
	return b.createSeries(ctx, params, owner, today)
}

func (b *bookingCommandsImpl) createIndividual(
	ctx context.Context,
	deskID uuid.UUID,
	owner booking.OwnerLabel,
	date booking.Date,
	today booking.Date,
) (*CreateBookingResult, error) {
	if date.Before(today) {
		return nil, ErrDateInPast
	}

	var existing []*booking.Occurrence
	blocker, err := b.occurrenceRead.FindByDeskAndDate(ctx, deskID, date)
	switch {
	case err == nil:
		existing = append(existing, blocker)
	case infra.IsKind(err, infra.KindNotFound):
		// free slot
	default:
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	cls := booking.ClassifyIndividual(date, existing)
	if cls.HasConflicts() {
		return &CreateBookingResult{IndividualConflicts: cls.IndividualConflicts}, nil
	}

	occ := booking.NewOccurrence(deskID, date, owner, false, booking.WeekdaySet{})
	ids, err := b.occurrenceRepo.InsertMany(ctx, []*booking.Occurrence{occ})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateBookingResult{CommittedIDs: ids, Accepted: cls.Accepted}, nil
}

func (b *bookingCommandsImpl) createSeries(
	ctx context.Context,
	params CreateBookingParams,
	owner booking.OwnerLabel,
	today booking.Date,
) (*CreateBookingResult, error) {
	days, err := booking.WeekdaySetFromIndices(params.Days)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if days.IsEmpty() {
		return nil, ErrEmptyWeekdaySet
	}

	req := booking.SeriesRequest{Start: params.Start, Days: days}
	if params.End != nil {
		req.End = *params.End
	}
	end := req.ResolvedEnd(b.policy.HorizonWeeks)

	candidates := booking.ExpandSeries(req, end, today)
	if len(candidates) == 0 {
		return nil, ErrNoBookableDates
	}

	// One range scan covers series reconstruction and per-date checks.
	existing, err := b.occurrenceRead.FindByDeskAndDateRange(ctx, params.DeskID, &req.Start, &end)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	cls := booking.ClassifySeries(req, end, candidates, existing)
	if len(cls.RecurringConflicts) > 0 || len(cls.Accepted) == 0 {
		return &CreateBookingResult{
			IndividualConflicts: cls.IndividualConflicts,
			RecurringConflicts:  cls.RecurringConflicts,
		}, nil
	}

	occs := make([]*booking.Occurrence, len(cls.Accepted))
	for i, date := range cls.Accepted {
		occs[i] = booking.NewOccurrence(params.DeskID, date, owner, true, days)
	}

	ids, err := b.occurrenceRepo.InsertMany(ctx, occs)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Another writer took one of the dates between classification
			// and commit; the whole batch was rolled back.
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if len(cls.IndividualConflicts) > 0 {
		slog.Info("series committed with dropped dates",
			"desk_id", params.DeskID,
			"committed", len(ids),
			"dropped", len(cls.IndividualConflicts))
	}

	return &CreateBookingResult{
		CommittedIDs:        ids,
		Accepted:            cls.Accepted,
		IndividualConflicts: cls.IndividualConflicts,
	}, nil
}

func (b *bookingCommandsImpl) Replace(ctx context.Context, params ReplaceBookingParams) (*CreateBookingResult, error) {
	owner, err := booking.NewOwnerLabel(params.Owner)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := b.ensureBookableDesk(ctx, params.DeskID); err != nil {
		return nil, err
	}
	if params.Date.Before(b.today()) {
		return nil, ErrDateInPast
	}

	occ := booking.NewOccurrence(params.DeskID, params.Date, owner, false, booking.WeekdaySet{})
	id, err := b.occurrenceRepo.ReplaceOnDate(ctx, occ, params.ReplacedID)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) || infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateBookingResult{
		CommittedIDs: []uuid.UUID{id},
		Accepted:     []booking.Date{params.Date},
	}, nil
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, params CancelBookingParams) (*CancelBookingResult, error) {
	anchor, err := b.occurrenceRead.FindByID(ctx, params.OccurrenceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	days, err := booking.WeekdaySetFromIndices(params.Days)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var deskRows []*booking.Occurrence
	if params.Mode != booking.CancelSingle {
		deskRows, err = b.occurrenceRead.FindByDeskAndDateRange(ctx, anchor.DeskID(), nil, nil)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	ids, err := booking.ResolveCancellation(params.Mode, anchor, deskRows, days)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if len(ids) == 0 {
		// Nothing matched; a no-op, not an error.
		return &CancelBookingResult{}, nil
	}

	deleted, err := b.occurrenceRepo.DeleteMany(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CancelBookingResult{
		DeletedCount: int(deleted),
		DeletedIDs:   ids,
	}, nil
}

func (b *bookingCommandsImpl) ensureBookableDesk(ctx context.Context, deskID uuid.UUID) error {
	deskSnap, err := b.deskRepo.FindByID(ctx, deskID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDeskNotFound
		}
		return errs.Mark(err, ErrDeskNotFound)
	}
	if deskSnap.IsBlocked {
		return ErrDeskBlocked
	}
	return nil
}

func (b *bookingCommandsImpl) today() booking.Date {
	now := b.clock.Now()
	if b.policy.Location != nil {
		now = now.In(b.policy.Location)
	}
	return booking.DateOf(now)
}
