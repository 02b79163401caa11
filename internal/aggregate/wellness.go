package aggregate

import (
	"slices"
	"time"

	"github.com/Kauesamartino/WorksafeApp/internal"
)

// Score selects one of the four self-assessment scores.
type Score string

const (
	ScoreMood         Score = "humor"
	ScoreStress       Score = "estresse"
	ScoreEnergy       Score = "energia"
	ScoreSleepQuality Score = "qualidadeSono"
)

var Scores = []Score{ScoreMood, ScoreStress, ScoreEnergy, ScoreSleepQuality}

func (s Score) Of(a internal.SelfAssessment) float64 {
	switch s {
	case ScoreMood:
		return float64(a.Mood)
	case ScoreStress:
		return float64(a.StressLevel)
	case ScoreEnergy:
		return float64(a.Energy)
	case ScoreSleepQuality:
		return float64(a.SleepQuality)
	}
	return 0
}

func assessmentDate(a internal.SelfAssessment) time.Time { return a.Date.Time }
func assessmentID(a internal.SelfAssessment) int64       { return a.ID }

// SortAssessments is the list screen order: newest day first.
func SortAssessments(list []internal.SelfAssessment) []internal.SelfAssessment {
	return SortByDateDescending(list, assessmentDate, assessmentID)
}

func ScoreAverage(list []internal.SelfAssessment, s Score) Average {
	return AverageOf(list, s.Of)
}

// Evolution is the change of each score between the two most recent
// assessments. It is empty when fewer than two exist.
type Evolution map[Score]int

func EvolutionOf(list []internal.SelfAssessment) Evolution {
	if len(list) < 2 {
		return Evolution{}
	}
	chrono := SortByDateAscending(list, assessmentDate, assessmentID)
	last, prev := chrono[len(chrono)-1], chrono[len(chrono)-2]
	out := Evolution{}
	for _, s := range Scores {
		out[s] = int(s.Of(last) - s.Of(prev))
	}
	return out
}

type RecommendationStatus string

const (
	StatusAll      RecommendationStatus = "todos"
	StatusPending  RecommendationStatus = "pendentes"
	StatusConsumed RecommendationStatus = "consumidos"
)

func Pending(recs []internal.Recommendation) []internal.Recommendation {
	return FilterRecommendations(recs, StatusPending, "")
}

// FilterRecommendations keeps recs matching status and, when category is not
// empty, that activity type.
func FilterRecommendations(recs []internal.Recommendation, status RecommendationStatus, category internal.ActivityType) []internal.Recommendation {
	out := []internal.Recommendation{}
	for _, r := range recs {
		if status == StatusPending && r.Consumed {
			continue
		}
		if status == StatusConsumed && !r.Consumed {
			continue
		}
		if category != "" && r.ActivityType != category {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Categories lists the activity types present in recs in first-seen order.
func Categories(recs []internal.Recommendation) []internal.ActivityType {
	var out []internal.ActivityType
	for _, r := range recs {
		if !slices.Contains(out, r.ActivityType) {
			out = append(out, r.ActivityType)
		}
	}
	return out
}

type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

// DefaultStressScore stands in for readings whose device sent none.
const DefaultStressScore = 50.0

func StressScoreOf(w internal.WearableReading) float64 {
	if w.DeviceData.StressScore == nil || *w.DeviceData.StressScore == 0 {
		return DefaultStressScore
	}
	return *w.DeviceData.StressScore
}

func StressLevelOf(w internal.WearableReading) StressLevel {
	score := StressScoreOf(w)
	switch {
	case score > 65:
		return StressHigh
	case score > 45:
		return StressMedium
	}
	return StressLow
}

// ActivityTrendWindow is how many readings each side of the step trend spans.
const ActivityTrendWindow = 3

type WearableStats struct {
	AvgHeartRate  Average
	AvgSteps      Average
	AvgSleepHours Average
	ActivityTrend Direction
}

func SummarizeWearables(readings []internal.WearableReading) WearableStats {
	chrono := SortByDateAscending(readings,
		func(w internal.WearableReading) time.Time { return w.Timestamp.Time },
		func(w internal.WearableReading) int64 { return w.ID })
	return WearableStats{
		AvgHeartRate:  AverageOf(chrono, func(w internal.WearableReading) float64 { return w.AvgHeartRate }),
		AvgSteps:      AverageOf(chrono, func(w internal.WearableReading) float64 { return float64(w.Steps) }),
		AvgSleepHours: AverageOf(chrono, func(w internal.WearableReading) float64 { return w.TotalSleepHours }),
		ActivityTrend: Trend(chrono, func(w internal.WearableReading) float64 { return float64(w.Steps) }, ActivityTrendWindow),
	}
}

// DashboardPendingLimit caps the pending recommendations a dashboard shows.
const DashboardPendingLimit = 3

type Summary struct {
	Averages      map[Score]Average
	Evolution     Evolution
	PendingCount  int
	Pending       []internal.Recommendation
	LatestReading *internal.WearableReading
	Wearables     WearableStats
}

func Summarize(assessments []internal.SelfAssessment, recs []internal.Recommendation, readings []internal.WearableReading) Summary {
	s := Summary{
		Averages:  make(map[Score]Average, len(Scores)),
		Evolution: EvolutionOf(assessments),
		Wearables: SummarizeWearables(readings),
	}
	for _, sc := range Scores {
		s.Averages[sc] = ScoreAverage(assessments, sc)
	}
	pending := Pending(recs)
	s.PendingCount = len(pending)
	s.Pending = pending[:min(len(pending), DashboardPendingLimit)]
	if len(readings) > 0 {
		latest := SortByDateDescending(readings,
			func(w internal.WearableReading) time.Time { return w.Timestamp.Time },
			func(w internal.WearableReading) int64 { return w.ID })[0]
		s.LatestReading = &latest
	}
	return s
}
