package internal

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339 utc", `"2025-01-15T10:30:00Z"`, time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"rfc3339 offset", `"2025-01-15T10:30:00-03:00"`, time.Date(2025, 1, 15, 13, 30, 0, 0, time.UTC)},
		{"zoneless", `"2025-01-15T10:30:00"`, time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"zoneless fraction", `"2025-01-15T10:30:00.123"`, time.Date(2025, 1, 15, 10, 30, 0, 123000000, time.UTC)},
		{"zoneless micros", `"2025-01-15T10:30:00.123456"`, time.Date(2025, 1, 15, 10, 30, 0, 123456000, time.UTC)},
		{"space separated", `"2025-01-15 10:30:00"`, time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &ts))
			assert.True(t, tc.want.Equal(ts.Time), "got %v", ts.Time)
		})
	}
}

func TestTimestamp_EmptyAndInvalid(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())
	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	assert.True(t, ts.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"15/01/2025"`), &ts))
}

func TestTimestamp_RoundTrip(t *testing.T) {
	in := NewTimestamp(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC))
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `"2025-01-15T10:30:00Z"`, string(b))

	b, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestFeedsDecodeZonelessTimestamps(t *testing.T) {
	var alerts []Alert
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"tipoAlerta":"SONO","severidade":"ALTA","data":"2025-01-15T10:30:00"}]`), &alerts))
	require.Len(t, alerts, 1)
	assert.Equal(t, 10, alerts[0].Timestamp.Hour())

	var readings []WearableReading
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"data":"2025-01-15T10:30:00.123","passos":4200,"rawData":{"stress_score":70}}]`), &readings))
	require.Len(t, readings, 1)
	assert.Equal(t, 123000000, readings[0].Timestamp.Nanosecond())
	assert.Equal(t, 4200, readings[0].Steps)

	var user User
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"nome":"Ana","createdAt":"2024-12-01T08:00:00"}`), &user))
	assert.Equal(t, 2024, user.CreatedAt.Year())
}
