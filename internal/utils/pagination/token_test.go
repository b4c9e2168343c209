package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	date := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)
	id := "3b0f3c4e-5b8a-4a6f-8d0e-2a9a1f1d7c11"

	token := EncodeToken(date, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, date.Equal(decodedDate), "Date should match after decode")
	assert.Equal(t, id, decodedID)
}

func TestEncodeToken_NormalizesToUTC(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	local := time.Date(2024, 1, 1, 20, 0, 0, 0, est)

	decoded, _, err := DecodeToken(EncodeToken(local, "x"))
	require.NoError(t, err)
	assert.True(t, local.Equal(decoded))
	assert.Equal(t, time.UTC, decoded.Location())
}

func TestDecodeTokenError(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantMsg string
	}{
		{name: "invalid base64", token: "this is not base64!", wantMsg: "base64 decode"},
		{name: "missing separator", token: base64.RawURLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z")), wantMsg: "split"},
		{name: "missing id", token: base64.RawURLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|")), wantMsg: "split"},
		{name: "invalid date", token: base64.RawURLEncoding.EncodeToString([]byte("notadate|abc")), wantMsg: "date parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeToken(tt.token)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, ClampLimit(0))
	assert.Equal(t, DefaultLimit, ClampLimit(-3))
	assert.Equal(t, 20, ClampLimit(20))
	assert.Equal(t, MaxLimit, ClampLimit(10_000))
}
