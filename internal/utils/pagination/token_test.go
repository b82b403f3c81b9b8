package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	occurredAt := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(occurredAt, createdAt, "txn-123")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedOccurredAt, decodedCreatedAt, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, occurredAt, decodedOccurredAt, "Occurred at date should match after decode")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")
	assert.Equal(t, "txn-123", decodedID, "Transaction ID should match after decode")

	// Zero time values still round trip.
	zeroTime := time.Time{}
	zeroToken := EncodeToken(zeroTime, zeroTime, "")
	decodedZeroDate, decodedZeroTime, decodedEmptyID, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, zeroTime, decodedZeroDate)
	assert.Equal(t, zeroTime, decodedZeroTime)
	assert.Empty(t, decodedEmptyID)
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, _, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// Missing separators
	_, _, _, err = DecodeToken("MjAyNC0wNS0xNVQwMDowMDowMFo=")
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split")

	// Invalid date component
	_, _, _, err = DecodeToken("bm90YWRhdGV8MjAyNC0wNS0xNVQxNDozMDo0NVp8eA==") // "notadate|2024-05-15T14:30:45Z|x"
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "occurred_at parse")
}
