package shared

import (
	"context"

	"campustix/internal/domain/listing"
	"campustix/internal/domain/offer"
	"campustix/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Listings() ListingRepository
	Offers() OfferRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	OfferByID(ctx context.Context, id uuid.UUID) (*OfferSnapshot, error)
	HasPendingOffer(ctx context.Context, listingID, buyerID uuid.UUID) (bool, error)
}

type ListingRepository interface {
	Create(ctx context.Context, db db.DBTX, l *listing.Listing) (uuid.UUID, error)
	// MarkSoldIfActive transitions active -> sold; reports whether a row changed
	MarkSoldIfActive(ctx context.Context, db db.DBTX, id uuid.UUID) (bool, error)
	CancelIfActive(ctx context.Context, db db.DBTX, id uuid.UUID) (bool, error)
}

type OfferRepository interface {
	Create(ctx context.Context, db db.DBTX, o *offer.Offer) (uuid.UUID, error)
	// UpdateStatusIfPending is the compare-and-set guarding the pending -> terminal
	// transition; reports whether the row was still pending at write time
	UpdateStatusIfPending(ctx context.Context, db db.DBTX, id uuid.UUID, status offer.Status) (bool, error)
	// RejectPendingSiblings rejects every other pending offer on the listing
	RejectPendingSiblings(ctx context.Context, db db.DBTX, listingID, exceptOfferID uuid.UUID) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, db db.DBTX, params CreateUserParams) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, db db.DBTX, userID uuid.UUID) error
}

type CreateUserParams struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	Role         string
}
