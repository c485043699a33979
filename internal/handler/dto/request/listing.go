package request

import "time"

type CreateListingRequest struct {
	Title      string    `json:"title" binding:"required,max=200"`
	EventName  string    `json:"event_name" binding:"required,max=200"`
	EventDate  time.Time `json:"event_date" binding:"required"`
	PriceCents int64     `json:"price_cents" binding:"required,gt=0"`
	Quantity   int32     `json:"quantity" binding:"required,min=1"`
}
