package listing

import (
	"time"

	"campustix/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errs.New("title is empty")
	ErrTitleTooLong     = errs.New("title too long")
	ErrEmptyEventName   = errs.New("event name is empty")
	ErrEventInPast      = errs.New("event date is in the past")
	ErrInvalidPrice     = errs.New("price must be positive")
	ErrInvalidQuantity  = errs.New("quantity must be at least 1")
	ErrInvalidStatus    = errs.New("invalid listing status")
)

type Listing struct {
	id         uuid.UUID
	sellerID   uuid.UUID
	title      Title
	eventName  string
	eventDate  time.Time
	priceCents PriceCents
	quantity   Quantity
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewListing(sellerID uuid.UUID, titleValue, eventName string, eventDate time.Time, priceCentsValue int64, quantityValue int32, now time.Time) (*Listing, error) {
	title, err := NewTitle(titleValue)
	if err != nil {
		return nil, err
	}

	if len(eventName) == 0 {
		return nil, ErrEmptyEventName
	}

	if eventDate.Before(now) {
		return nil, ErrEventInPast
	}

	priceCents, err := NewPriceCents(priceCentsValue)
	if err != nil {
		return nil, err
	}

	quantity, err := NewQuantity(quantityValue)
	if err != nil {
		return nil, err
	}

	return &Listing{
		id:         uuid.New(),
		sellerID:   sellerID,
		title:      title,
		eventName:  eventName,
		eventDate:  eventDate,
		priceCents: priceCents,
		quantity:   quantity,
		status:     StatusActive,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func (l *Listing) ID() uuid.UUID          { return l.id }
func (l *Listing) SellerID() uuid.UUID    { return l.sellerID }
func (l *Listing) Title() Title           { return l.title }
func (l *Listing) EventName() string      { return l.eventName }
func (l *Listing) EventDate() time.Time   { return l.eventDate }
func (l *Listing) PriceCents() PriceCents { return l.priceCents }
func (l *Listing) Quantity() Quantity     { return l.quantity }
func (l *Listing) Status() Status         { return l.status }
func (l *Listing) CreatedAt() time.Time   { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time   { return l.updatedAt }
