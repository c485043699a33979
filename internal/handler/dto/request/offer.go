package request

type CreateOfferRequest struct {
	Quantity   int32 `json:"quantity" binding:"required,min=1"`
	PriceCents int64 `json:"price_cents" binding:"required,gt=0"`
}

// RespondOfferRequest carries the listing owner's decision
type RespondOfferRequest struct {
	Response string `json:"response" binding:"required,oneof=accept reject"`
}
