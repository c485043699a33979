package queries

import (
	"context"
	"time"

	"campustix/internal/infra"
	"campustix/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound = errs.New("listing not found")
	ErrInvalidCursor   = errs.New("invalid cursor")
)

type ListingView struct {
	ID             uuid.UUID `json:"id"`
	SellerID       uuid.UUID `json:"seller_id"`
	SellerUsername string    `json:"seller_username"`
	Title          string    `json:"title"`
	EventName      string    `json:"event_name"`
	EventDate      time.Time `json:"event_date"`
	PriceCents     int64     `json:"price_cents"`
	Quantity       int32     `json:"quantity"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ListingListItem struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	EventName  string    `json:"event_name"`
	EventDate  time.Time `json:"event_date"`
	PriceCents int64     `json:"price_cents"`
	Quantity   int32     `json:"quantity"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListingFilters struct {
	EventAfter    *time.Time
	MaxPriceCents *int64
}

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	FindActiveFirstPage(ctx context.Context, limit int32, filters ListingFilters) ([]*ListingListItem, error)
	FindActiveKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, filters ListingFilters) ([]*ListingListItem, error)
	FindBySeller(ctx context.Context, sellerID uuid.UUID, limit int32) ([]*ListingListItem, error)
}

type ListingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	ListActive(ctx context.Context, filters ListingFilters, cursor *Cursor, limit int) ([]*ListingListItem, *Cursor, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, limit int) ([]*ListingListItem, error)
}

type listingQueriesImpl struct {
	store ListingReadStore
}

func NewListingQueries(store ListingReadStore) ListingQueries {
	return &listingQueriesImpl{store: store}
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *listingQueriesImpl) ListActive(ctx context.Context, filters ListingFilters, cursor *Cursor, limit int) ([]*ListingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ListingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindActiveFirstPage(ctx, int32(limit+1), filters)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindActiveKeyset(ctx, lastCreatedAt, lastID, int32(limit+1), filters)
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *listingQueriesImpl) ListBySeller(ctx context.Context, sellerID uuid.UUID, limit int) ([]*ListingListItem, error) {
	return q.store.FindBySeller(ctx, sellerID, int32(ValidateLimit(limit)))
}
