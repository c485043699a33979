package response

import (
	"time"

	"campustix/internal/usecase/queries"
)

type ListingResponse struct {
	ID             string    `json:"id"`
	SellerID       string    `json:"seller_id"`
	SellerUsername string    `json:"seller_username"`
	Title          string    `json:"title"`
	EventName      string    `json:"event_name"`
	EventDate      time.Time `json:"event_date"`
	PriceCents     int64     `json:"price_cents"`
	Quantity       int32     `json:"quantity"`
	Status         string    `json:"status"`
	CreatedAt      int64     `json:"created_at"`
	UpdatedAt      int64     `json:"updated_at"`
}

func FromListingView(v *queries.ListingView) *ListingResponse {
	return &ListingResponse{
		ID:             v.ID.String(),
		SellerID:       v.SellerID.String(),
		SellerUsername: v.SellerUsername,
		Title:          v.Title,
		EventName:      v.EventName,
		EventDate:      v.EventDate,
		PriceCents:     v.PriceCents,
		Quantity:       v.Quantity,
		Status:         v.Status,
		CreatedAt:      v.CreatedAt.Unix(),
		UpdatedAt:      v.UpdatedAt.Unix(),
	}
}

type ListingListItemResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	EventName  string    `json:"event_name"`
	EventDate  time.Time `json:"event_date"`
	PriceCents int64     `json:"price_cents"`
	Quantity   int32     `json:"quantity"`
	Status     string    `json:"status"`
	CreatedAt  int64     `json:"created_at"`
}

func FromListingList(items []*queries.ListingListItem) []*ListingListItemResponse {
	res := make([]*ListingListItemResponse, len(items))
	for i, it := range items {
		res[i] = &ListingListItemResponse{
			ID:         it.ID.String(),
			Title:      it.Title,
			EventName:  it.EventName,
			EventDate:  it.EventDate,
			PriceCents: it.PriceCents,
			Quantity:   it.Quantity,
			Status:     it.Status,
			CreatedAt:  it.CreatedAt.Unix(),
		}
	}
	return res
}
