package progress

import (
	"github.com/2beens/gymtrack/internal/gymtrack/charts"
	"github.com/2beens/gymtrack/pkg"
)

type ChartMetric string

const (
	ChartMetricWeight ChartMetric = "weight"
	ChartMetricReps   ChartMetric = "reps"
	ChartMetricSets   ChartMetric = "sets"
)

var chartMetricLabels = map[ChartMetric]string{
	ChartMetricWeight: "Weight (kg)",
	ChartMetricReps:   "Reps",
	ChartMetricSets:   "Sets",
}

func ParseChartMetric(s string) (ChartMetric, error) {
	if s == "" {
		return ChartMetricWeight, nil
	}
	m := ChartMetric(s)
	if _, ok := chartMetricLabels[m]; !ok {
		return "", pkg.NewValidationError("invalid chart metric: %s", s)
	}
	return m, nil
}

func (m ChartMetric) value(e Entry) float64 {
	switch m {
	case ChartMetricReps:
		return float64(e.Reps)
	case ChartMetricSets:
		return float64(e.Sets)
	default:
		return e.Weight
	}
}

// BuildChart turns progress entries into a series of the given metric, oldest first.
func BuildChart(entries []Entry, metric ChartMetric) charts.Series {
	points := make([]charts.Point, 0, len(entries))
	for _, e := range entries {
		points = append(points, charts.Point{
			Date:  e.Date,
			Value: metric.value(e),
		})
	}
	return charts.Build(chartMetricLabels[metric], points)
}
