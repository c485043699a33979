package readstore

import (
	"context"

	"campustix/internal/infra"
	"campustix/internal/infra/db"
	"campustix/internal/pkg/pgconv"
	"campustix/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OfferReadStore struct {
	db db.DBTX
}

func NewOfferReadStore(dbtx db.DBTX) *OfferReadStore {
	return &OfferReadStore{db: dbtx}
}

// FindByID joins the listing snapshot; the buyer identity is resolved
// separately so its failure can degrade to a null buyer.
func (r *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	const q = `
		SELECT o.id, o.listing_id, l.seller_id, l.title, l.event_name, l.event_date, l.price_cents,
		       o.buyer_id, o.quantity, o.price_cents, o.status, o.created_at, o.updated_at
		FROM offers o
		JOIN listings l ON l.id = o.listing_id
		WHERE o.id = $1`

	view := &queries.OfferView{}
	err := r.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.ListingID, &view.ListingSellerID, &view.ListingTitle, &view.ListingEventName,
		&view.ListingEventDate, &view.ListingPriceCents,
		&view.BuyerID, &view.Quantity, &view.PriceCents, &view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get offer by id", err)
	}
	return view, nil
}

func (r *OfferReadStore) FindByBuyer(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*queries.OfferListItem, error) {
	const q = `
		SELECT o.id, o.listing_id, l.title, o.buyer_id, o.quantity, o.price_cents, o.status, o.created_at
		FROM offers o
		JOIN listings l ON l.id = o.listing_id
		WHERE o.buyer_id = $1
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, buyerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers by buyer", err)
	}
	defer rows.Close()
	return scanOfferItems(rows)
}

func (r *OfferReadStore) FindByListing(ctx context.Context, listingID uuid.UUID, limit int32) ([]*queries.OfferListItem, error) {
	const q = `
		SELECT o.id, o.listing_id, l.title, o.buyer_id, o.quantity, o.price_cents, o.status, o.created_at
		FROM offers o
		JOIN listings l ON l.id = o.listing_id
		WHERE o.listing_id = $1
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, listingID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers by listing", err)
	}
	defer rows.Close()
	return scanOfferItems(rows)
}

func scanOfferItems(rows pgx.Rows) ([]*queries.OfferListItem, error) {
	var result []*queries.OfferListItem
	for rows.Next() {
		item := &queries.OfferListItem{}
		if err := rows.Scan(
			&item.ID, &item.ListingID, &item.ListingTitle, &item.BuyerID,
			&item.Quantity, &item.PriceCents, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offer rows", err)
	}
	return result, nil
}
