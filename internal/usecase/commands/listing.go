package commands

import (
	"context"
	"time"

	"campustix/internal/domain/listing"
	"campustix/internal/infra"
	"campustix/internal/pkg/clock"
	"campustix/internal/pkg/errs"
	"campustix/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrListingNotFound = errs.New("listing not found")

type CreateListingRequest struct {
	Title      string
	EventName  string
	EventDate  time.Time
	PriceCents int64
	Quantity   int32
}

type CreateListingResult struct {
	ListingID uuid.UUID
}

type CancelListingResult struct {
	RejectedOffers int64
}

type ListingCommands interface {
	Create(ctx context.Context, req CreateListingRequest, sellerID uuid.UUID) (*CreateListingResult, error)
	// Cancel transitions active -> cancelled and rejects outstanding pending offers
	Cancel(ctx context.Context, listingID, actorID uuid.UUID) (*CancelListingResult, error)
}

type listingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewListingCommands(uow shared.UnitOfWork, clk clock.Clock) ListingCommands {
	return &listingUseCaseImpl{uow: uow, clock: clk}
}

func (uc *listingUseCaseImpl) Create(ctx context.Context, req CreateListingRequest, sellerID uuid.UUID) (*CreateListingResult, error) {
	l, err := listing.NewListing(sellerID, req.Title, req.EventName, req.EventDate, req.PriceCents, req.Quantity, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Listings().Create(ctx, tx.DB(), l)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateListingResult{ListingID: createdID}, nil
}

func (uc *listingUseCaseImpl) Cancel(ctx context.Context, listingID, actorID uuid.UUID) (*CancelListingResult, error) {
	result := &CancelListingResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lst, derr := tx.Reads().ListingByID(ctx, listingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrListingNotFound
			}
			return derr
		}
		if lst.SellerID != actorID {
			return ErrNotListingOwner
		}

		cancelled, derr := tx.Listings().CancelIfActive(ctx, tx.DB(), listingID)
		if derr != nil {
			return derr
		}
		if !cancelled {
			return ErrListingNotActive
		}

		// Pending offers on a cancelled listing can never be accepted;
		// reject them in the same transaction.
		rejected, derr := tx.Offers().RejectPendingSiblings(ctx, tx.DB(), listingID, uuid.Nil)
		if derr != nil {
			return derr
		}
		result.RejectedOffers = rejected
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
