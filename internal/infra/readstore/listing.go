package readstore

import (
	"context"
	"time"

	"campustix/internal/infra"
	"campustix/internal/infra/db"
	"campustix/internal/pkg/pgconv"
	"campustix/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jinzhu/copier"
)

type ListingReadStore struct {
	db db.DBTX
}

func NewListingReadStore(dbtx db.DBTX) *ListingReadStore {
	return &ListingReadStore{db: dbtx}
}

type listingRow struct {
	ID             uuid.UUID
	SellerID       uuid.UUID
	SellerUsername string
	Title          string
	EventName      string
	EventDate      time.Time
	PriceCents     int64
	Quantity       int32
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	const q = `
		SELECT l.id, l.seller_id, u.username, l.title, l.event_name, l.event_date,
		       l.price_cents, l.quantity, l.status, l.created_at, l.updated_at
		FROM listings l
		JOIN users u ON u.id = l.seller_id
		WHERE l.id = $1`

	var row listingRow
	err := r.db.QueryRow(ctx, q, id).Scan(
		&row.ID, &row.SellerID, &row.SellerUsername, &row.Title, &row.EventName, &row.EventDate,
		&row.PriceCents, &row.Quantity, &row.Status, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get listing by id", err)
	}

	var view queries.ListingView
	if err := copier.Copy(&view, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map listing row", err)
	}
	return &view, nil
}

func (r *ListingReadStore) FindActiveFirstPage(ctx context.Context, limit int32, filters queries.ListingFilters) ([]*queries.ListingListItem, error) {
	const q = `
		SELECT id, title, event_name, event_date, price_cents, quantity, status, created_at
		FROM listings
		WHERE status = 'active'
		  AND ($2::timestamptz IS NULL OR event_date > $2)
		  AND ($3::bigint IS NULL OR price_cents <= $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, q, limit, filters.EventAfter, filters.MaxPriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active listings", err)
	}
	defer rows.Close()
	return scanListingItems(rows)
}

func (r *ListingReadStore) FindActiveKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, filters queries.ListingFilters) ([]*queries.ListingListItem, error) {
	const q = `
		SELECT id, title, event_name, event_date, price_cents, quantity, status, created_at
		FROM listings
		WHERE status = 'active'
		  AND (created_at, id) < ($2, $3)
		  AND ($4::timestamptz IS NULL OR event_date > $4)
		  AND ($5::bigint IS NULL OR price_cents <= $5)
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, q, limit, lastCreatedAt, lastID, filters.EventAfter, filters.MaxPriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active listings keyset", err)
	}
	defer rows.Close()
	return scanListingItems(rows)
}

func (r *ListingReadStore) FindBySeller(ctx context.Context, sellerID uuid.UUID, limit int32) ([]*queries.ListingListItem, error) {
	const q = `
		SELECT id, title, event_name, event_date, price_cents, quantity, status, created_at
		FROM listings
		WHERE seller_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, sellerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings by seller", err)
	}
	defer rows.Close()
	return scanListingItems(rows)
}

func scanListingItems(rows pgx.Rows) ([]*queries.ListingListItem, error) {
	var result []*queries.ListingListItem
	for rows.Next() {
		item := &queries.ListingListItem{}
		if err := rows.Scan(
			&item.ID, &item.Title, &item.EventName, &item.EventDate,
			&item.PriceCents, &item.Quantity, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan listing row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate listing rows", err)
	}
	return result, nil
}
