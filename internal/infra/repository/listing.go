package repository

import (
	"context"

	"campustix/internal/domain/listing"
	"campustix/internal/infra"
	"campustix/internal/infra/db"
	"campustix/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ListingRepository struct{}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

func (r *ListingRepository) Create(ctx context.Context, dbtx db.DBTX, l *listing.Listing) (uuid.UUID, error) {
	const q = `
		INSERT INTO listings (id, seller_id, title, event_name, event_date, price_cents, quantity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, q,
		l.ID(), l.SellerID(), l.Title().String(), l.EventName(), l.EventDate(),
		l.PriceCents().Value(), l.Quantity().Value(), l.Status().String(), l.CreatedAt(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("listing references missing seller", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create listing", err)
	}
	return id, nil
}

func (r *ListingRepository) MarkSoldIfActive(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	const q = `
		UPDATE listings
		SET status = 'sold', updated_at = now()
		WHERE id = $1 AND status = 'active'`

	tag, err := dbtx.Exec(ctx, q, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark listing sold", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ListingRepository) CancelIfActive(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	const q = `
		UPDATE listings
		SET status = 'cancelled', updated_at = now()
		WHERE id = $1 AND status = 'active'`

	tag, err := dbtx.Exec(ctx, q, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel listing", err)
	}
	return tag.RowsAffected() > 0, nil
}
