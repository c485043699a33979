//go:build unit

package builder

import (
	"time"

	domoffer "campustix/internal/domain/offer"
	"campustix/internal/usecase/queries"
	"campustix/internal/usecase/shared"

	"github.com/google/uuid"
)

type OfferBuilder struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	SellerID   uuid.UUID
	BuyerID    uuid.UUID
	Quantity   int32
	PriceCents int64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewOfferBuilder() *OfferBuilder {
	now := time.Now()
	return &OfferBuilder{
		ID:         uuid.New(),
		ListingID:  uuid.New(),
		SellerID:   uuid.New(),
		BuyerID:    uuid.New(),
		Quantity:   2,
		PriceCents: 4000,
		Status:     "pending",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) BuildDomain() (*domoffer.Offer, error) {
	return domoffer.NewOffer(b.ListingID, b.BuyerID, b.Quantity, b.PriceCents, b.CreatedAt)
}

func (b *OfferBuilder) BuildSnapshot() *shared.OfferSnapshot {
	return &shared.OfferSnapshot{
		ID:         b.ID,
		ListingID:  b.ListingID,
		BuyerID:    b.BuyerID,
		Quantity:   b.Quantity,
		PriceCents: b.PriceCents,
		Status:     b.Status,
	}
}

// BuildListingSnapshot pairs the offer with the listing it targets
func (b *OfferBuilder) BuildListingSnapshot() *shared.ListingSnapshot {
	return &shared.ListingSnapshot{
		ID:         b.ListingID,
		SellerID:   b.SellerID,
		Title:      "2x GA tickets, section B",
		EventName:  "Spring Formal",
		EventDate:  b.CreatedAt.Add(30 * 24 * time.Hour),
		PriceCents: 4500,
		Quantity:   2,
		Status:     "active",
	}
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	return &queries.OfferView{
		ID:                b.ID,
		ListingID:         b.ListingID,
		ListingSellerID:   b.SellerID,
		ListingTitle:      "2x GA tickets, section B",
		ListingEventName:  "Spring Formal",
		ListingEventDate:  b.CreatedAt.Add(30 * 24 * time.Hour),
		ListingPriceCents: 4500,
		BuyerID:           b.BuyerID,
		Buyer:             &queries.BuyerView{ID: b.BuyerID, Username: "buyer01"},
		Quantity:          b.Quantity,
		PriceCents:        b.PriceCents,
		Status:            b.Status,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (b *OfferBuilder) BuildCreateRequestMap() map[string]any {
	return map[string]any{
		"quantity":    b.Quantity,
		"price_cents": b.PriceCents,
	}
}
