package queries

import (
	"context"
	"log/slog"
	"time"

	"campustix/internal/infra"
	"campustix/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOfferNotFound = errs.New("offer not found")
	ErrOfferAccess   = errs.New("offer access denied")
)

// BuyerView is the buyer's public identity attached to an offer view
type BuyerView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// OfferView carries the offer plus a snapshot of its listing. Buyer is
// nil when the buyer record cannot be resolved.
type OfferView struct {
	ID                uuid.UUID  `json:"id"`
	ListingID         uuid.UUID  `json:"listing_id"`
	ListingSellerID   uuid.UUID  `json:"-"`
	ListingTitle      string     `json:"listing_title"`
	ListingEventName  string     `json:"listing_event_name"`
	ListingEventDate  time.Time  `json:"listing_event_date"`
	ListingPriceCents int64      `json:"listing_price_cents"`
	BuyerID           uuid.UUID  `json:"buyer_id"`
	Buyer             *BuyerView `json:"buyer"`
	Quantity          int32      `json:"quantity"`
	PriceCents        int64      `json:"price_cents"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type OfferListItem struct {
	ID           uuid.UUID `json:"id"`
	ListingID    uuid.UUID `json:"listing_id"`
	ListingTitle string    `json:"listing_title"`
	BuyerID      uuid.UUID `json:"buyer_id"`
	Quantity     int32     `json:"quantity"`
	PriceCents   int64     `json:"price_cents"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type OfferReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	FindByBuyer(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*OfferListItem, error)
	FindByListing(ctx context.Context, listingID uuid.UUID, limit int32) ([]*OfferListItem, error)
}

type UserPublicReadStore interface {
	FindPublicByID(ctx context.Context, id uuid.UUID) (*BuyerView, error)
}

type OfferQueries interface {
	// GetByID enforces that only the buyer or the listing owner may view an offer
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*OfferView, error)
	// GetResolved skips the access check; callers use it right after the
	// resolution workflow has already proved ownership
	GetResolved(ctx context.Context, id uuid.UUID) (*OfferView, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]*OfferListItem, error)
	// ListByListing is restricted to the listing owner
	ListByListing(ctx context.Context, listingID uuid.UUID, actorID uuid.UUID, limit int) ([]*OfferListItem, error)
}

type offerQueriesImpl struct {
	store        OfferReadStore
	users        UserPublicReadStore
	listingStore ListingReadStore
}

func NewOfferQueries(store OfferReadStore, users UserPublicReadStore, listingStore ListingReadStore) OfferQueries {
	return &offerQueriesImpl{store: store, users: users, listingStore: listingStore}
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*OfferView, error) {
	view, err := q.findEnriched(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.BuyerID != actorID && view.ListingSellerID != actorID {
		return nil, ErrOfferAccess
	}
	return view, nil
}

func (q *offerQueriesImpl) GetResolved(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	return q.findEnriched(ctx, id)
}

func (q *offerQueriesImpl) findEnriched(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	// Buyer lookup is advisory: a missing or unreadable buyer record
	// degrades to a null buyer rather than failing the request.
	buyer, berr := q.users.FindPublicByID(ctx, view.BuyerID)
	if berr != nil {
		slog.Warn("buyer lookup failed for offer view",
			"offer_id", view.ID.String(),
			"buyer_id", view.BuyerID.String(),
			"error", berr.Error())
		view.Buyer = nil
		return view, nil
	}
	view.Buyer = buyer
	return view, nil
}

func (q *offerQueriesImpl) ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]*OfferListItem, error) {
	return q.store.FindByBuyer(ctx, buyerID, int32(ValidateLimit(limit)))
}

func (q *offerQueriesImpl) ListByListing(ctx context.Context, listingID uuid.UUID, actorID uuid.UUID, limit int) ([]*OfferListItem, error) {
	lst, err := q.listingStore.FindByID(ctx, listingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if lst.SellerID != actorID {
		return nil, ErrOfferAccess
	}
	return q.store.FindByListing(ctx, listingID, int32(ValidateLimit(limit)))
}
