package desk

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyCode = errors.New("desk code cannot be empty")
	ErrBlocked   = errors.New("desk is blocked")
)

// Desk identifies a bookable physical slot. Identity is immutable once a
// reservation references it; blocking only gates new bookings.
type Desk struct {
	id        uuid.UUID
	code      string
	areaID    *uuid.UUID
	isBlocked bool
}

func NewDesk(code string, areaID *uuid.UUID) (*Desk, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	return &Desk{
		id:     uuid.New(),
		code:   code,
		areaID: areaID,
	}, nil
}

func ReconstructDesk(id uuid.UUID, code string, areaID *uuid.UUID, isBlocked bool) *Desk {
	return &Desk{
		id:        id,
		code:      code,
		areaID:    areaID,
		isBlocked: isBlocked,
	}
}

func (d *Desk) ID() uuid.UUID      { return d.id }
func (d *Desk) Code() string       { return d.code }
func (d *Desk) AreaID() *uuid.UUID { return d.areaID }
func (d *Desk) IsBlocked() bool    { return d.isBlocked }

// EnsureBookable rejects new reservations on blocked desks regardless of
// conflicts.
func (d *Desk) EnsureBookable() error {
	if d.isBlocked {
		return ErrBlocked
	}
	return nil
}

func (d *Desk) SetBlocked(blocked bool) {
	d.isBlocked = blocked
}
