package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types
type ListingSnapshot struct {
	ID         uuid.UUID
	SellerID   uuid.UUID
	Title      string
	EventName  string
	EventDate  time.Time
	PriceCents int64
	Quantity   int32
	Status     string
}

type OfferSnapshot struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	BuyerID    uuid.UUID
	Quantity   int32
	PriceCents int64
	Status     string
}
