package offer

import (
	"time"

	"campustix/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errs.New("offer quantity must be at least 1")
	ErrInvalidPrice    = errs.New("offer price must be positive")
	ErrInvalidStatus   = errs.New("invalid offer status")
	ErrInvalidDecision = errs.New("invalid offer decision")
)

type Offer struct {
	id         uuid.UUID
	listingID  uuid.UUID
	buyerID    uuid.UUID
	quantity   int32
	priceCents int64
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewOffer(listingID, buyerID uuid.UUID, quantity int32, priceCents int64, now time.Time) (*Offer, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if priceCents <= 0 {
		return nil, ErrInvalidPrice
	}

	return &Offer{
		id:         uuid.New(),
		listingID:  listingID,
		buyerID:    buyerID,
		quantity:   quantity,
		priceCents: priceCents,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func (o *Offer) ID() uuid.UUID        { return o.id }
func (o *Offer) ListingID() uuid.UUID { return o.listingID }
func (o *Offer) BuyerID() uuid.UUID   { return o.buyerID }
func (o *Offer) Quantity() int32      { return o.quantity }
func (o *Offer) PriceCents() int64    { return o.priceCents }
func (o *Offer) Status() Status       { return o.status }
func (o *Offer) CreatedAt() time.Time { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time { return o.updatedAt }
