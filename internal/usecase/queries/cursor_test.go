//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"campustix/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)

	encoded := queries.EncodeAfterCursor(at, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)

	if diff := cmp.Diff(at.UnixMicro(), gotTime.UnixMicro()); diff != "" {
		t.Errorf("timestamp mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(id, gotID); diff != "" {
		t.Errorf("id mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeAfterCursor(t *testing.T) {
	cases := []struct {
		name   string
		cursor string
	}{
		{name: "empty cursor", cursor: ""},
		{name: "not base64", cursor: "!!not-base64!!"},
		{name: "wrong version", cursor: base64.URLEncoding.EncodeToString([]byte("v2:123-" + uuid.New().String()))},
		{name: "missing separator", cursor: base64.URLEncoding.EncodeToString([]byte("v1:123456"))},
		{name: "bad timestamp", cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.New().String()))},
		{name: "bad uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid"))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 1, queries.ValidateLimit(1))
	assert.Equal(t, 200, queries.ValidateLimit(200))
	assert.Equal(t, 200, queries.ValidateLimit(1000))
}
