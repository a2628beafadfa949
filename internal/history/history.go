// Package history merges the two independently fetched record streams
// (completed workouts and pain notes) into one chronological feed and
// derives chart-ready time series from them.
package history

import (
	"sort"
	"time"

	"vitalmotion/client/internal/domain"
)

const dateLayout = "2006-01-02"

// Series is one chart dataset: parallel labels and values.
type Series struct {
	Labels []string
	Values []float64
}

// Merge concatenates both entry streams and orders them by date descending.
// The sort is stable: entries sharing a date keep their concatenation order
// (workouts before pain notes), so repeated calls are deterministic.
func Merge(workouts, pain []domain.HistoryEntry) []domain.HistoryEntry {
	merged := make([]domain.HistoryEntry, 0, len(workouts)+len(pain))
	merged = append(merged, workouts...)
	merged = append(merged, pain...)
	// Dates are YYYY-MM-DD, so lexical comparison is chronological.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date > merged[j].Date
	})
	return merged
}

// PainByBodyPartPerDay filters notes to [start, end] inclusive, groups them
// by body part and then by date, and averages the pain level per date.
// Labels come out sorted chronologically ascending. An empty filtered set
// yields an empty map.
func PainByBodyPartPerDay(notes []domain.PainNote, start, end string) map[string]Series {
	byPart := make(map[string][]domain.PainNote)
	var parts []string // first-seen order, for deterministic iteration in tests
	for _, n := range notes {
		if n.Date < start || n.Date > end {
			continue
		}
		if _, ok := byPart[n.BodyPart]; !ok {
			parts = append(parts, n.BodyPart)
		}
		byPart[n.BodyPart] = append(byPart[n.BodyPart], n)
	}

	out := make(map[string]Series, len(parts))
	for _, part := range parts {
		levels := make(map[string][]int)
		var labels []string
		for _, n := range byPart[part] {
			if _, ok := levels[n.Date]; !ok {
				labels = append(labels, n.Date)
			}
			levels[n.Date] = append(levels[n.Date], n.PainLevel)
		}
		sortDates(labels)
		values := make([]float64, len(labels))
		for i, date := range labels {
			sum := 0
			for _, lv := range levels[date] {
				sum += lv
			}
			values[i] = float64(sum) / float64(len(levels[date]))
		}
		out[part] = Series{Labels: labels, Values: values}
	}
	return out
}

// WorkoutsPerWeek filters workouts to [start, end] inclusive and buckets
// them into rolling 7-day windows anchored at the data: the first workout in
// ascending date order opens a window covering its date plus the next six
// days; workouts inside the window increment its count, and the first
// workout past it opens a new window at its own date. This is deliberately
// not calendar-week (Mon-Sun) bucketing. An empty filtered set yields an
// empty series.
func WorkoutsPerWeek(workouts []domain.CompletedWorkout, start, end string) Series {
	var dates []string
	for _, w := range workouts {
		if w.DateCompleted < start || w.DateCompleted > end {
			continue
		}
		dates = append(dates, w.DateCompleted)
	}
	if len(dates) == 0 {
		return Series{Labels: []string{}, Values: []float64{}}
	}
	sortDates(dates)

	var s Series
	var windowEnd string
	for _, date := range dates {
		if len(s.Labels) == 0 || date > windowEnd {
			opened, err := time.Parse(dateLayout, date)
			if err != nil {
				// Dates were validated at submit time; skip anything that
				// slipped through rather than fail the whole chart.
				continue
			}
			windowEnd = opened.AddDate(0, 0, 6).Format(dateLayout)
			s.Labels = append(s.Labels, date+" to "+windowEnd)
			s.Values = append(s.Values, 0)
		}
		s.Values[len(s.Values)-1]++
	}
	return s
}

// sortDates orders ISO dates chronologically ascending. Parsed calendar
// order and lexical order agree for YYYY-MM-DD, but parse anyway so a
// malformed stray date cannot scramble the chart.
func sortDates(dates []string) {
	sort.SliceStable(dates, func(i, j int) bool {
		di, erri := time.Parse(dateLayout, dates[i])
		dj, errj := time.Parse(dateLayout, dates[j])
		if erri != nil || errj != nil {
			return dates[i] < dates[j]
		}
		return di.Before(dj)
	})
}
