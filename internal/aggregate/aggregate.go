// Package aggregate holds the list arithmetic the screens share: means, sort
// orders, severity ranking and trends.
package aggregate

import (
	"cmp"
	"slices"
	"strconv"
	"time"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/montanaflynn/stats"
)

// EmptyValue is shown in place of a mean over nothing.
const EmptyValue = "—"

type Average struct {
	Value float64
	Valid bool
}

// String renders one decimal place, or EmptyValue.
func (a Average) String() string {
	if !a.Valid {
		return EmptyValue
	}
	return strconv.FormatFloat(a.Value, 'f', 1, 64)
}

func AverageOf[T any](list []T, field func(T) float64) Average {
	if len(list) == 0 {
		return Average{}
	}
	data := make(stats.Float64Data, len(list))
	for i, item := range list {
		data[i] = field(item)
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return Average{}
	}
	return Average{Value: mean, Valid: true}
}

// SortByDateDescending returns a copy of list, newest first, ties broken by
// the higher id. The order is total, so sorting twice changes nothing.
func SortByDateDescending[T any](list []T, date func(T) time.Time, id func(T) int64) []T {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b T) int {
		if c := date(b).Compare(date(a)); c != 0 {
			return c
		}
		return cmp.Compare(id(b), id(a))
	})
	return out
}

// SortByDateAscending is the chronological order trends and evolutions read.
func SortByDateAscending[T any](list []T, date func(T) time.Time, id func(T) int64) []T {
	out := SortByDateDescending(list, date, id)
	slices.Reverse(out)
	return out
}

func SeverityRank(s internal.Severity) int {
	switch s {
	case internal.SeverityHigh:
		return 3
	case internal.SeverityMedium:
		return 2
	case internal.SeverityLow:
		return 1
	}
	return 0
}

// SortBySeverity returns alerts most severe first; equal severities keep
// their relative order.
func SortBySeverity(alerts []internal.Alert) []internal.Alert {
	out := slices.Clone(alerts)
	slices.SortStableFunc(out, func(a, b internal.Alert) int {
		return cmp.Compare(SeverityRank(b.Severity), SeverityRank(a.Severity))
	})
	return out
}

type Direction string

const (
	Up     Direction = "up"
	Down   Direction = "down"
	Stable Direction = "stable"
)

// Trend compares the mean of the last window entries with the mean of the
// first window entries. A list shorter than window, or a window below 1,
// yields Stable.
func Trend[T any](list []T, field func(T) float64, window int) Direction {
	if window <= 0 || len(list) < window {
		return Stable
	}
	older := AverageOf(list[:window], field)
	recent := AverageOf(list[len(list)-window:], field)
	switch {
	case recent.Value > older.Value:
		return Up
	case recent.Value < older.Value:
		return Down
	}
	return Stable
}
