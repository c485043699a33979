//go:build unit

package listing_test

import (
	"strings"
	"testing"
	"time"

	"campustix/internal/domain/listing"
	"campustix/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ListingBuilder)
	errIs  error
}

func TestListing(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, listing.StatusActive, actual.Status())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("title validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty title",
				mutate: func(b *builder.ListingBuilder) { b.Title = "" },
				errIs:  listing.ErrEmptyTitle,
			},
			{
				name:   "maximum valid title (200 chars)",
				mutate: func(b *builder.ListingBuilder) { b.Title = strings.Repeat("a", 200) },
			},
			{
				name:   "title too long (201 chars)",
				mutate: func(b *builder.ListingBuilder) { b.Title = strings.Repeat("a", 201) },
				errIs:  listing.ErrTitleTooLong,
			},
		})
	})

	t.Run("event validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty event name",
				mutate: func(b *builder.ListingBuilder) { b.EventName = "" },
				errIs:  listing.ErrEmptyEventName,
			},
			{
				name:   "event date in the past",
				mutate: func(b *builder.ListingBuilder) { b.EventDate = b.CreatedAt.Add(-time.Hour) },
				errIs:  listing.ErrEventInPast,
			},
			{
				name:   "event date just ahead",
				mutate: func(b *builder.ListingBuilder) { b.EventDate = b.CreatedAt.Add(time.Minute) },
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero price",
				mutate: func(b *builder.ListingBuilder) { b.PriceCents = 0 },
				errIs:  listing.ErrInvalidPrice,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.ListingBuilder) { b.PriceCents = -100 },
				errIs:  listing.ErrInvalidPrice,
			},
			{
				name:   "minimum valid price",
				mutate: func(b *builder.ListingBuilder) { b.PriceCents = 1 },
			},
		})
	})

	t.Run("quantity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero quantity",
				mutate: func(b *builder.ListingBuilder) { b.Quantity = 0 },
				errIs:  listing.ErrInvalidQuantity,
			},
			{
				name:   "negative quantity",
				mutate: func(b *builder.ListingBuilder) { b.Quantity = -1 },
				errIs:  listing.ErrInvalidQuantity,
			},
			{
				name:   "minimum valid quantity",
				mutate: func(b *builder.ListingBuilder) { b.Quantity = 1 },
			},
		})
	})
}

func TestStatus(t *testing.T) {
	t.Run("terminal states", func(t *testing.T) {
		assert.False(t, listing.StatusActive.IsTerminal())
		assert.True(t, listing.StatusSold.IsTerminal())
		assert.True(t, listing.StatusCancelled.IsTerminal())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := listing.NewStatus("archived")
		assert.ErrorIs(t, err, listing.ErrInvalidStatus)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewListingBuilder()
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
