package commands

import (
	"context"
	"log/slog"

	"campustix/internal/domain/listing"
	"campustix/internal/domain/offer"
	"campustix/internal/infra"
	"campustix/internal/infra/db"
	"campustix/internal/pkg/clock"
	"campustix/internal/pkg/errs"
	"campustix/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOfferNotFound            = errs.New("offer not found")
	ErrOfferListingGone         = errs.New("listing for offer not found")
	ErrNotListingOwner          = errs.New("only the listing owner may resolve offers against it")
	ErrOfferNotPending          = errs.New("offer is no longer pending")
	ErrListingNotActive         = errs.New("listing is not active")
	ErrOwnListingOffer          = errs.New("cannot make an offer on own listing")
	ErrDuplicatePendingOffer    = errs.New("a pending offer for this listing already exists")
	ErrQuantityExceedsAvailable = errs.New("offer quantity exceeds listing quantity")
)

type ProposeOfferRequest struct {
	ListingID  uuid.UUID
	Quantity   int32
	PriceCents int64
}

type ProposeOfferResult struct {
	OfferID uuid.UUID
}

type ResolveOfferResult struct {
	OfferID          uuid.UUID
	Decision         offer.Decision
	RejectedSiblings int64
	ListingSold      bool
}

type OfferCommands interface {
	Propose(ctx context.Context, req ProposeOfferRequest, buyerID uuid.UUID) (*ProposeOfferResult, error)
	Resolve(ctx context.Context, offerID, actorID uuid.UUID, decision offer.Decision) (*ResolveOfferResult, error)
}

type offerUseCaseImpl struct {
	uow      shared.UnitOfWork
	offers   shared.OfferRepository
	listings shared.ListingRepository
	clock    clock.Clock
}

func NewOfferCommands(uow shared.UnitOfWork, offers shared.OfferRepository, listings shared.ListingRepository, clk clock.Clock) OfferCommands {
	return &offerUseCaseImpl{uow: uow, offers: offers, listings: listings, clock: clk}
}

func (uc *offerUseCaseImpl) Propose(ctx context.Context, req ProposeOfferRequest, buyerID uuid.UUID) (*ProposeOfferResult, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lst, derr := tx.Reads().ListingByID(ctx, req.ListingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrListingNotFound
			}
			return derr
		}
		if lst.SellerID == buyerID {
			return ErrOwnListingOffer
		}
		if lst.Status != listing.StatusActive.String() {
			return ErrListingNotActive
		}
		if req.Quantity > lst.Quantity {
			return ErrQuantityExceedsAvailable
		}

		dup, derr := tx.Reads().HasPendingOffer(ctx, req.ListingID, buyerID)
		if derr != nil {
			return derr
		}
		if dup {
			return ErrDuplicatePendingOffer
		}

		o, derr := offer.NewOffer(req.ListingID, buyerID, req.Quantity, req.PriceCents, uc.clock.Now())
		if derr != nil {
			return derr
		}

		id, derr := tx.Offers().Create(ctx, tx.DB(), o)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ProposeOfferResult{OfferID: createdID}, nil
}

// Resolve validates ownership and state, then flips the offer out of
// pending with a compare-and-set. The commit of that transaction is the
// commit point: cascade rejection of sibling offers and conditional
// listing closure happen afterwards as advisory cleanup.
func (uc *offerUseCaseImpl) Resolve(ctx context.Context, offerID, actorID uuid.UUID, decision offer.Decision) (*ResolveOfferResult, error) {
	var offSnap *shared.OfferSnapshot
	var lstSnap *shared.ListingSnapshot

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		offSnap, derr = tx.Reads().OfferByID(ctx, offerID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrOfferNotFound
			}
			return derr
		}

		// An offer without a listing is unreachable under the normal
		// creation flow; treat it as a data-integrity failure.
		lstSnap, derr = tx.Reads().ListingByID(ctx, offSnap.ListingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrOfferListingGone
			}
			return derr
		}

		if lstSnap.SellerID != actorID {
			return ErrNotListingOwner
		}
		if offSnap.Status != offer.StatusPending.String() {
			return ErrOfferNotPending
		}
		// The reject path deliberately skips this check so stale offers
		// can still be cleared off sold or cancelled listings.
		if decision == offer.DecisionAccept && lstSnap.Status != listing.StatusActive.String() {
			return ErrListingNotActive
		}

		updated, derr := tx.Offers().UpdateStatusIfPending(ctx, tx.DB(), offerID, decision.TargetStatus())
		if derr != nil {
			return derr
		}
		if !updated {
			// Lost the race with a concurrent resolution; callers see
			// the same conflict as the precondition check.
			return ErrOfferNotPending
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &ResolveOfferResult{OfferID: offerID, Decision: decision}
	if decision == offer.DecisionAccept {
		result.RejectedSiblings, result.ListingSold = uc.finalizeAcceptance(ctx, offSnap, lstSnap)
	}
	return result, nil
}

// finalizeAcceptance runs after the primary transition has committed.
// Each write is independent and best-effort: failures are logged and
// suppressed because the accept itself already succeeded.
func (uc *offerUseCaseImpl) finalizeAcceptance(ctx context.Context, offSnap *shared.OfferSnapshot, lstSnap *shared.ListingSnapshot) (rejected int64, sold bool) {
	err := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		n, derr := uc.offers.RejectPendingSiblings(ctx, dbtx, offSnap.ListingID, offSnap.ID)
		if derr != nil {
			return derr
		}
		rejected = n
		return nil
	})
	if err != nil {
		slog.Warn("cascade rejection failed after accept",
			"offer_id", offSnap.ID.String(),
			"listing_id", offSnap.ListingID.String(),
			"error", err.Error())
	}

	if offSnap.Quantity >= lstSnap.Quantity {
		err = uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
			ok, derr := uc.listings.MarkSoldIfActive(ctx, dbtx, lstSnap.ID)
			if derr != nil {
				return derr
			}
			sold = ok
			return nil
		})
		if err != nil {
			slog.Warn("listing closure failed after accept",
				"listing_id", lstSnap.ID.String(),
				"error", err.Error())
		}
	}
	return rejected, sold
}
