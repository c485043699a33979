package repository

import (
	"context"

	"campustix/internal/domain/offer"
	"campustix/internal/infra"
	"campustix/internal/infra/db"
	"campustix/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OfferRepository struct{}

func NewOfferRepository() *OfferRepository {
	return &OfferRepository{}
}

func (r *OfferRepository) Create(ctx context.Context, dbtx db.DBTX, o *offer.Offer) (uuid.UUID, error) {
	const q = `
		INSERT INTO offers (id, listing_id, buyer_id, quantity, price_cents, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, q,
		o.ID(), o.ListingID(), o.BuyerID(), o.Quantity(), o.PriceCents(), o.Status().String(), o.CreatedAt(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("offer references missing listing or buyer", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create offer", err)
	}
	return id, nil
}

// UpdateStatusIfPending only succeeds while the offer is still pending,
// so concurrent resolutions cannot both flip the same offer.
func (r *OfferRepository) UpdateStatusIfPending(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status offer.Status) (bool, error) {
	const q = `
		UPDATE offers
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status = 'pending'`

	tag, err := dbtx.Exec(ctx, q, id, status.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update offer status", err)
	}
	return tag.RowsAffected() > 0, nil
}

// RejectPendingSiblings is a single set-based write; pass uuid.Nil as
// exceptOfferID to reject every pending offer on the listing.
func (r *OfferRepository) RejectPendingSiblings(ctx context.Context, dbtx db.DBTX, listingID, exceptOfferID uuid.UUID) (int64, error) {
	const q = `
		UPDATE offers
		SET status = 'rejected', updated_at = now()
		WHERE listing_id = $1 AND status = 'pending' AND id <> $2`

	tag, err := dbtx.Exec(ctx, q, listingID, exceptOfferID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reject sibling offers", err)
	}
	return tag.RowsAffected(), nil
}
