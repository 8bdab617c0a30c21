package charts

import (
	"fmt"
	"sort"
	"time"
)

// Point is a single dated value of a series.
type Point struct {
	Date  time.Time
	Value float64
}

// Series is a chart-ready set of labels and values, of equal length.
type Series struct {
	Label  string    `json:"label"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// DateLabel formats the date as day/month, without zero padding.
func DateLabel(date time.Time) string {
	return fmt.Sprintf("%d/%d", date.Day(), int(date.Month()))
}

// Build sorts the points by date ascending and turns them into a series.
// Points with equal dates keep their relative order.
func Build(label string, points []Point) Series {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	series := Series{
		Label:  label,
		Labels: make([]string, 0, len(sorted)),
		Values: make([]float64, 0, len(sorted)),
	}
	for _, p := range sorted {
		series.Labels = append(series.Labels, DateLabel(p.Date))
		series.Values = append(series.Values, p.Value)
	}
	return series
}
