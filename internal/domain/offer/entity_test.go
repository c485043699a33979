//go:build unit

package offer_test

import (
	"testing"

	"campustix/internal/domain/offer"
	"campustix/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.OfferBuilder)
	errIs  error
}

func TestOffer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewOfferBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, offer.StatusPending, actual.Status())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("quantity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero quantity",
				mutate: func(b *builder.OfferBuilder) { b.Quantity = 0 },
				errIs:  offer.ErrInvalidQuantity,
			},
			{
				name:   "negative quantity",
				mutate: func(b *builder.OfferBuilder) { b.Quantity = -2 },
				errIs:  offer.ErrInvalidQuantity,
			},
			{
				name:   "minimum valid quantity",
				mutate: func(b *builder.OfferBuilder) { b.Quantity = 1 },
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero price",
				mutate: func(b *builder.OfferBuilder) { b.PriceCents = 0 },
				errIs:  offer.ErrInvalidPrice,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.OfferBuilder) { b.PriceCents = -500 },
				errIs:  offer.ErrInvalidPrice,
			},
			{
				name:   "minimum valid price",
				mutate: func(b *builder.OfferBuilder) { b.PriceCents = 1 },
			},
		})
	})
}

func TestDecision(t *testing.T) {
	t.Run("accepts known decisions", func(t *testing.T) {
		d, err := offer.NewDecision("accept")
		require.NoError(t, err)
		assert.Equal(t, offer.StatusAccepted, d.TargetStatus())

		d, err = offer.NewDecision("reject")
		require.NoError(t, err)
		assert.Equal(t, offer.StatusRejected, d.TargetStatus())
	})

	t.Run("rejects unknown decision", func(t *testing.T) {
		_, err := offer.NewDecision("maybe")
		assert.ErrorIs(t, err, offer.ErrInvalidDecision)
	})
}

func TestStatus(t *testing.T) {
	t.Run("terminal states", func(t *testing.T) {
		assert.False(t, offer.StatusPending.IsTerminal())
		assert.True(t, offer.StatusAccepted.IsTerminal())
		assert.True(t, offer.StatusRejected.IsTerminal())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := offer.NewStatus("withdrawn")
		assert.ErrorIs(t, err, offer.ErrInvalidStatus)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewOfferBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
