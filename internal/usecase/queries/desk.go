package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type DeskView struct {
	ID        uuid.UUID  `json:"id"`
	Code      string     `json:"code"`
	AreaID    *uuid.UUID `json:"area_id,omitempty"`
	IsBlocked bool       `json:"is_blocked"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type DeskQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DeskView, error)
	List(ctx context.Context) ([]*DeskView, error)
}

type DeskReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*DeskView, error)
	FindAllViews(ctx context.Context) ([]*DeskView, error)
}

type deskQueriesImpl struct {
	store DeskReadStore
}

func NewDeskQueries(store DeskReadStore) DeskQueries {
	return &deskQueriesImpl{store: store}
}

func (q *deskQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DeskView, error) {
	return q.store.FindViewByID(ctx, id)
}

func (q *deskQueriesImpl) List(ctx context.Context) ([]*DeskView, error) {
	return q.store.FindAllViews(ctx)
}
