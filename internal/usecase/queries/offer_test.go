//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"campustix/internal/infra"
	"campustix/internal/pkg/errs"
	"campustix/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOfferStore struct {
	views map[uuid.UUID]*queries.OfferView
}

func (s *stubOfferStore) FindByID(_ context.Context, id uuid.UUID) (*queries.OfferView, error) {
	v, ok := s.views[id]
	if !ok {
		return nil, infra.WrapRepoErr("offer not found", errs.New("no rows"), infra.KindNotFound)
	}
	cp := *v
	return &cp, nil
}

func (s *stubOfferStore) FindByBuyer(_ context.Context, _ uuid.UUID, _ int32) ([]*queries.OfferListItem, error) {
	return nil, nil
}

func (s *stubOfferStore) FindByListing(_ context.Context, _ uuid.UUID, _ int32) ([]*queries.OfferListItem, error) {
	return nil, nil
}

type stubUserStore struct {
	buyers map[uuid.UUID]*queries.BuyerView
	err    error
}

func (s *stubUserStore) FindPublicByID(_ context.Context, id uuid.UUID) (*queries.BuyerView, error) {
	if s.err != nil {
		return nil, s.err
	}
	b, ok := s.buyers[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", errs.New("no rows"), infra.KindNotFound)
	}
	return b, nil
}

type stubListingStore struct {
	views map[uuid.UUID]*queries.ListingView
}

func (s *stubListingStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ListingView, error) {
	v, ok := s.views[id]
	if !ok {
		return nil, infra.WrapRepoErr("listing not found", errs.New("no rows"), infra.KindNotFound)
	}
	return v, nil
}

func (s *stubListingStore) FindActiveFirstPage(_ context.Context, _ int32, _ queries.ListingFilters) ([]*queries.ListingListItem, error) {
	return nil, nil
}

func (s *stubListingStore) FindActiveKeyset(_ context.Context, _ time.Time, _ uuid.UUID, _ int32, _ queries.ListingFilters) ([]*queries.ListingListItem, error) {
	return nil, nil
}

func (s *stubListingStore) FindBySeller(_ context.Context, _ uuid.UUID, _ int32) ([]*queries.ListingListItem, error) {
	return nil, nil
}

type offerQueryFixture struct {
	q        queries.OfferQueries
	users    *stubUserStore
	view     *queries.OfferView
	buyerID  uuid.UUID
	sellerID uuid.UUID
}

func newOfferQueryFixture() *offerQueryFixture {
	buyerID := uuid.New()
	sellerID := uuid.New()
	view := &queries.OfferView{
		ID:              uuid.New(),
		ListingID:       uuid.New(),
		ListingSellerID: sellerID,
		BuyerID:         buyerID,
		Quantity:        2,
		PriceCents:      4000,
		Status:          "pending",
	}

	offers := &stubOfferStore{views: map[uuid.UUID]*queries.OfferView{view.ID: view}}
	users := &stubUserStore{buyers: map[uuid.UUID]*queries.BuyerView{
		buyerID: {ID: buyerID, Username: "buyer01"},
	}}
	listings := &stubListingStore{views: map[uuid.UUID]*queries.ListingView{}}

	return &offerQueryFixture{
		q:        queries.NewOfferQueries(offers, users, listings),
		users:    users,
		view:     view,
		buyerID:  buyerID,
		sellerID: sellerID,
	}
}

func TestOfferQueries_GetByID(t *testing.T) {
	t.Run("buyer can view", func(t *testing.T) {
		fx := newOfferQueryFixture()
		got, err := fx.q.GetByID(context.Background(), fx.view.ID, fx.buyerID)
		require.NoError(t, err)
		require.NotNil(t, got.Buyer)
		assert.Equal(t, "buyer01", got.Buyer.Username)
	})

	t.Run("listing owner can view", func(t *testing.T) {
		fx := newOfferQueryFixture()
		got, err := fx.q.GetByID(context.Background(), fx.view.ID, fx.sellerID)
		require.NoError(t, err)
		assert.Equal(t, fx.view.ID, got.ID)
	})

	t.Run("outsider is denied", func(t *testing.T) {
		fx := newOfferQueryFixture()
		_, err := fx.q.GetByID(context.Background(), fx.view.ID, uuid.New())
		assert.ErrorIs(t, err, queries.ErrOfferAccess)
	})

	t.Run("unknown offer maps to not found", func(t *testing.T) {
		fx := newOfferQueryFixture()
		_, err := fx.q.GetByID(context.Background(), uuid.New(), fx.buyerID)
		assert.ErrorIs(t, err, queries.ErrOfferNotFound)
	})

	t.Run("failed buyer lookup degrades to null buyer", func(t *testing.T) {
		fx := newOfferQueryFixture()
		fx.users.err = errs.New("connection reset")

		got, err := fx.q.GetByID(context.Background(), fx.view.ID, fx.buyerID)
		require.NoError(t, err)
		assert.Nil(t, got.Buyer)
	})
}

func TestOfferQueries_GetResolved(t *testing.T) {
	t.Run("skips the participant check", func(t *testing.T) {
		fx := newOfferQueryFixture()
		got, err := fx.q.GetResolved(context.Background(), fx.view.ID)
		require.NoError(t, err)
		assert.Equal(t, fx.view.ID, got.ID)
	})
}
