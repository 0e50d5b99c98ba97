package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseObjectIDRejectsWrongLength(t *testing.T) {

	cases := []string{
		"",
		"abc",
		"6579c1b2a4d8e9f0c3b2a1",       // 22 chars
		"6579c1b2a4d8e9f0c3b2a1d4e5",   // 26 chars
		"6579c1b2a4d8e9f0c3b2a1d4e5f6", // 28 chars
	}

	for _, id := range cases {
		_, err := parseObjectID(id)
		assert.ErrorIs(t, err, ErrInvalidID, "id %q should be rejected", id)
	}
}

func TestParseObjectIDRejectsNonHexOfRightLength(t *testing.T) {

	_, err := parseObjectID("zzzzzzzzzzzzzzzzzzzzzzzz")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestParseObjectIDAcceptsValidHex(t *testing.T) {

	oid, err := parseObjectID("6579c1b2a4d8e9f0c3b2a1d4")
	require.NoError(t, err)
	assert.Equal(t, "6579c1b2a4d8e9f0c3b2a1d4", oid.Hex())
}

func TestAvailableFilterUsesTodayInclusive(t *testing.T) {

	now := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)
	filter := availableFilter(now)

	deadline, ok := filter["applicationDeadline"].(bson.M)
	require.True(t, ok)
	// $gte means a deadline equal to today still matches.
	assert.Equal(t, "2024-03-05", deadline["$gte"])
}

func TestAvailableFilterPadsMonthAndDay(t *testing.T) {

	now := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)
	filter := availableFilter(now)

	deadline := filter["applicationDeadline"].(bson.M)
	// Zero-padded YYYY-MM-DD keeps the string comparison chronological.
	assert.Equal(t, "2024-01-03", deadline["$gte"])
}
