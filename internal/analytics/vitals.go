package analytics

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/AbdelwaliNour/Hospital/pkg/model"
)

// SeriesPoint is one labelled point of a chart series
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// HeartRateSeries returns the heart-rate samples in chronological order,
// labelled by hour ("14:00") in loc. Samples without a heart rate or
// timestamp are skipped.
func HeartRateSeries(metrics []model.HealthMetric, loc *time.Location) []SeriesPoint {
	samples := make([]model.HealthMetric, 0, len(metrics))
	for _, m := range metrics {
		if m.HeartRate != nil && !m.Timestamp.IsZero() {
			samples = append(samples, m)
		}
	}
	slices.SortStableFunc(samples, func(a, b model.HealthMetric) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	out := make([]SeriesPoint, 0, len(samples))
	for _, m := range samples {
		out = append(out, SeriesPoint{
			Label: fmt.Sprintf("%d:00", m.Timestamp.In(loc).Hour()),
			Value: float64(*m.HeartRate),
		})
	}
	return out
}

// SleepSeries averages sleep hours per calendar month, oldest month first,
// labelled with the short month name. Averages are rounded to one decimal.
func SleepSeries(metrics []model.HealthMetric, loc *time.Location) []SeriesPoint {
	type bucket struct {
		month time.Time
		sum   int
		n     int
	}
	byMonth := make(map[time.Time]*bucket)
	for _, m := range metrics {
		if m.SleepHours == nil || m.Timestamp.IsZero() {
			continue
		}
		t := m.Timestamp.In(loc)
		key := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
		b, ok := byMonth[key]
		if !ok {
			b = &bucket{month: key}
			byMonth[key] = b
		}
		b.sum += *m.SleepHours
		b.n++
	}

	buckets := make([]*bucket, 0, len(byMonth))
	for _, b := range byMonth {
		buckets = append(buckets, b)
	}
	slices.SortFunc(buckets, func(a, b *bucket) int { return a.month.Compare(b.month) })

	out := make([]SeriesPoint, 0, len(buckets))
	for _, b := range buckets {
		avg := float64(b.sum) / float64(b.n)
		out = append(out, SeriesPoint{
			Label: monthNames[b.month.Month()-1],
			Value: math.Round(avg*10) / 10,
		})
	}
	return out
}
