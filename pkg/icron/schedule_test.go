package icron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTriggerInfoFiveField(t *testing.T) {
	ref := time.Date(2025, 3, 10, 12, 5, 0, 0, time.UTC)

	info, err := GetTriggerInfo("*/10 * * * *", ref)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 10, 12, 10, 0, 0, time.UTC), info.Next)
	assert.Equal(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), info.Last)
	assert.Equal(t, 5*time.Minute, info.TimeUntilNext)
	assert.Equal(t, 5*time.Minute, info.TimeSinceLast)
}

func TestGetTriggerInfoSixField(t *testing.T) {
	ref := time.Date(2025, 3, 10, 12, 0, 30, 0, time.UTC)

	info, err := GetTriggerInfo("0 * * * * *", ref)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 10, 12, 1, 0, 0, time.UTC), info.Next)
	assert.Equal(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), info.Last)
}

func TestGetTriggerInfoDescriptor(t *testing.T) {
	ref := time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)

	info, err := GetTriggerInfo("@hourly", ref)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC), info.Next)
	assert.Equal(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), info.Last)
}

func TestGetTriggerInfoExactFireTime(t *testing.T) {
	ref := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	info, err := GetTriggerInfo("0 * * * *", ref)
	require.NoError(t, err)

	// a fire exactly at refTime counts as the last, not the next
	assert.Equal(t, ref, info.Last)
	assert.Equal(t, ref.Add(time.Hour), info.Next)
	assert.Zero(t, info.TimeSinceLast)
}

func TestGetTriggerInfoInvalidExpression(t *testing.T) {
	_, err := GetTriggerInfo("not a schedule", time.Now())
	assert.Error(t, err)
}
