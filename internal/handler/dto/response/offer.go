package response

import (
	"time"

	"campustix/internal/usecase/queries"
)

type OfferBuyerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type OfferResponse struct {
	ID                string              `json:"id"`
	ListingID         string              `json:"listing_id"`
	ListingTitle      string              `json:"listing_title"`
	ListingEventName  string              `json:"listing_event_name"`
	ListingEventDate  time.Time           `json:"listing_event_date"`
	ListingPriceCents int64               `json:"listing_price_cents"`
	BuyerID           string              `json:"buyer_id"`
	Buyer             *OfferBuyerResponse `json:"buyer"`
	Quantity          int32               `json:"quantity"`
	PriceCents        int64               `json:"price_cents"`
	Status            string              `json:"status"`
	CreatedAt         int64               `json:"created_at"`
	UpdatedAt         int64               `json:"updated_at"`
}

func FromOfferView(v *queries.OfferView) *OfferResponse {
	resp := &OfferResponse{
		ID:                v.ID.String(),
		ListingID:         v.ListingID.String(),
		ListingTitle:      v.ListingTitle,
		ListingEventName:  v.ListingEventName,
		ListingEventDate:  v.ListingEventDate,
		ListingPriceCents: v.ListingPriceCents,
		BuyerID:           v.BuyerID.String(),
		Quantity:          v.Quantity,
		PriceCents:        v.PriceCents,
		Status:            v.Status,
		CreatedAt:         v.CreatedAt.Unix(),
		UpdatedAt:         v.UpdatedAt.Unix(),
	}
	if v.Buyer != nil {
		resp.Buyer = &OfferBuyerResponse{
			ID:       v.Buyer.ID.String(),
			Username: v.Buyer.Username,
		}
	}
	return resp
}

// ResolveOfferResponse is the body of a successful accept or reject.
type ResolveOfferResponse struct {
	Offer   *OfferResponse `json:"offer"`
	Message string         `json:"message"`
}

type OfferListItemResponse struct {
	ID           string `json:"id"`
	ListingID    string `json:"listing_id"`
	ListingTitle string `json:"listing_title"`
	BuyerID      string `json:"buyer_id"`
	Quantity     int32  `json:"quantity"`
	PriceCents   int64  `json:"price_cents"`
	Status       string `json:"status"`
	CreatedAt    int64  `json:"created_at"`
}

func FromOfferList(items []*queries.OfferListItem) []*OfferListItemResponse {
	res := make([]*OfferListItemResponse, len(items))
	for i, it := range items {
		res[i] = &OfferListItemResponse{
			ID:           it.ID.String(),
			ListingID:    it.ListingID.String(),
			ListingTitle: it.ListingTitle,
			BuyerID:      it.BuyerID.String(),
			Quantity:     it.Quantity,
			PriceCents:   it.PriceCents,
			Status:       it.Status,
			CreatedAt:    it.CreatedAt.Unix(),
		}
	}
	return res
}
