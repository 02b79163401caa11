package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/aggregate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationViewFilter(t *testing.T) {
	status, category, err := recommendationView{status: "pendentes", category: "hydration"}.filter()
	require.NoError(t, err)
	assert.Equal(t, aggregate.StatusPending, status)
	assert.Equal(t, internal.ActivityHydration, category)

	_, _, err = recommendationView{status: "done"}.filter()
	assert.Error(t, err)

	_, _, err = recommendationView{status: "todos", category: "YOGA"}.filter()
	assert.Error(t, err)
}

func TestRenderAlertsMostSevereFirst(t *testing.T) {
	now := internal.NewTimestamp(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	alerts := []internal.Alert{
		{ID: 1, Severity: internal.SeverityLow, Description: "low one", Timestamp: now},
		{ID: 2, Severity: internal.SeverityHigh, Description: "high one", Timestamp: now},
		{ID: 3, Severity: internal.SeverityMedium, Description: "medium one", Timestamp: now},
	}
	var buf bytes.Buffer
	renderAlerts(&buf, alerts)

	out := buf.String()
	high, medium, low := strings.Index(out, "high one"), strings.Index(out, "medium one"), strings.Index(out, "low one")
	assert.Less(t, high, medium)
	assert.Less(t, medium, low)
}

func TestRenderEmptyLists(t *testing.T) {
	var buf bytes.Buffer
	renderAssessments(&buf, nil)
	renderWearables(&buf, nil)
	assert.Contains(t, buf.String(), "Nenhuma autoavaliação")
	assert.Contains(t, buf.String(), "Nenhum dado de wearable")
}

func TestRenderRecommendationsFilters(t *testing.T) {
	recs := []internal.Recommendation{
		{ID: 1, Title: "Beber água", ActivityType: internal.ActivityHydration},
		{ID: 2, Title: "Alongar", ActivityType: internal.ActivityPosture, Consumed: true},
	}
	var buf bytes.Buffer
	renderRecommendations(&buf, recs, aggregate.StatusPending, "")

	out := buf.String()
	assert.Contains(t, out, "Beber água")
	assert.NotContains(t, out, "Alongar")
	assert.Contains(t, out, "1 pendentes de 2")
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-3", "abc"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}
