//go:build unit

package builder

import (
	"time"

	domlisting "campustix/internal/domain/listing"
	"campustix/internal/usecase/queries"
	"campustix/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	ID         uuid.UUID
	SellerID   uuid.UUID
	Title      string
	EventName  string
	EventDate  time.Time
	PriceCents int64
	Quantity   int32
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewListingBuilder() *ListingBuilder {
	now := time.Now()
	return &ListingBuilder{
		ID:         uuid.New(),
		SellerID:   uuid.New(),
		Title:      "2x GA tickets, section B",
		EventName:  "Spring Formal",
		EventDate:  now.Add(30 * 24 * time.Hour),
		PriceCents: 4500,
		Quantity:   2,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

func (b *ListingBuilder) BuildDomain() (*domlisting.Listing, error) {
	return domlisting.NewListing(b.SellerID, b.Title, b.EventName, b.EventDate, b.PriceCents, b.Quantity, b.CreatedAt)
}

func (b *ListingBuilder) BuildSnapshot() *shared.ListingSnapshot {
	return &shared.ListingSnapshot{
		ID:         b.ID,
		SellerID:   b.SellerID,
		Title:      b.Title,
		EventName:  b.EventName,
		EventDate:  b.EventDate,
		PriceCents: b.PriceCents,
		Quantity:   b.Quantity,
		Status:     b.Status,
	}
}

func (b *ListingBuilder) BuildView() *queries.ListingView {
	return &queries.ListingView{
		ID:             b.ID,
		SellerID:       b.SellerID,
		SellerUsername: "seller01",
		Title:          b.Title,
		EventName:      b.EventName,
		EventDate:      b.EventDate,
		PriceCents:     b.PriceCents,
		Quantity:       b.Quantity,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *ListingBuilder) BuildListItem() *queries.ListingListItem {
	return &queries.ListingListItem{
		ID:         b.ID,
		Title:      b.Title,
		EventName:  b.EventName,
		EventDate:  b.EventDate,
		PriceCents: b.PriceCents,
		Quantity:   b.Quantity,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *ListingBuilder) BuildCreateRequestMap() map[string]any {
	return map[string]any{
		"title":       b.Title,
		"event_name":  b.EventName,
		"event_date":  b.EventDate.Format(time.RFC3339),
		"price_cents": b.PriceCents,
		"quantity":    b.Quantity,
	}
}
