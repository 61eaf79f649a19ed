// ABOUTME: Read-side query helpers feeding charts and summaries.
// ABOUTME: Pure functions over store listings; results sorted ascending by date.
package analysis

import (
	"sort"
	"time"

	"github.com/pwojcik/gymtrack/internal/models"
)

// Point is a single chart point.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// DateRange is an inclusive day-granular range: a record dated exactly on
// End is included (End is extended by one day, exclusive).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the range.
func (r DateRange) Contains(t time.Time) bool {
	endExclusive := r.End.AddDate(0, 0, 1)
	return !t.Before(r.Start) && t.Before(endExclusive)
}

// ExerciseMetric selects which set measure an exercise series extracts.
type ExerciseMetric string

const (
	MetricReps     ExerciseMetric = "reps"
	MetricWeight   ExerciseMetric = "weight"
	MetricDistance ExerciseMetric = "distance"
	MetricTime     ExerciseMetric = "time"
)

// AllExerciseMetrics returns all valid exercise metrics.
var AllExerciseMetrics = []ExerciseMetric{MetricReps, MetricWeight, MetricDistance, MetricTime}

// IsValidExerciseMetric checks if a string is a valid exercise metric.
func IsValidExerciseMetric(s string) bool {
	for _, m := range AllExerciseMetrics {
		if string(m) == s {
			return true
		}
	}
	return false
}

// MeasurementSeries returns {date, value} points for one body-metric field
// across all measurements, ascending by date. A nil within returns every
// point.
func MeasurementSeries(measurements []*models.Measurement, field models.MeasurementField, within *DateRange) []Point {
	points := make([]Point, 0, len(measurements))
	for _, m := range measurements {
		points = append(points, Point{Date: m.Date, Value: m.FieldValue(field)})
	}
	sortByDate(points)
	return filterRange(points, within)
}

// ExerciseSeries returns, for every workout containing the named exercise,
// the maximum value of the chosen metric across that exercise's sets.
// Time values are stored in seconds and reported in minutes. Ascending by
// date; exact name match.
func ExerciseSeries(workouts []*models.Workout, name string, metric ExerciseMetric, within *DateRange) []Point {
	var points []Point
	for _, w := range workouts {
		var ex *models.Exercise
		for i := range w.Exercises {
			if w.Exercises[i].Name == name {
				ex = &w.Exercises[i]
				break
			}
		}
		if ex == nil {
			continue
		}

		var value float64
		for _, set := range ex.Sets {
			var v float64
			switch metric {
			case MetricReps:
				v = set.Reps
			case MetricWeight:
				v = set.Weight
			case MetricDistance:
				v = set.Distance
			case MetricTime:
				v = set.Time / 60
			}
			if v > value {
				value = v
			}
		}
		points = append(points, Point{Date: w.Date, Value: value})
	}
	sortByDate(points)
	return filterRange(points, within)
}

// MonthlyWorkoutCounts returns the number of workouts per calendar month of
// the given year. Index 0 is January.
func MonthlyWorkoutCounts(workouts []*models.Workout, year int) [12]int {
	var counts [12]int
	for _, w := range workouts {
		if w.Date.Year() == year {
			counts[w.Date.Month()-1]++
		}
	}
	return counts
}

// ExerciseNames returns the distinct exercise names across all workouts, in
// first-seen order given the input ordering.
func ExerciseNames(workouts []*models.Workout) []string {
	seen := make(map[string]bool)
	var names []string
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			if !seen[ex.Name] {
				seen[ex.Name] = true
				names = append(names, ex.Name)
			}
		}
	}
	return names
}

func sortByDate(points []Point) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
}

func filterRange(points []Point, within *DateRange) []Point {
	if within == nil {
		return points
	}
	out := points[:0]
	for _, p := range points {
		if within.Contains(p.Date) {
			out = append(out, p)
		}
	}
	return out
}
