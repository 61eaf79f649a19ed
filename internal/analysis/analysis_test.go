// ABOUTME: Tests for derived-view query helpers.
// ABOUTME: Covers range inclusivity, max extraction, and monthly counts.
package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwojcik/gymtrack/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func workoutWith(date time.Time, name string, sets ...models.ExerciseSet) *models.Workout {
	ex := models.NewExercise(name)
	ex.Sets = sets
	return models.NewWorkout(date).WithExercises([]models.Exercise{ex})
}

func TestMeasurementSeriesAscending(t *testing.T) {
	later := models.NewMeasurement(day(2025, 3, 10))
	later.Weight = 81
	earlier := models.NewMeasurement(day(2025, 3, 1))
	earlier.Weight = 83

	// Store order is most-recent-first; the series must flip it.
	points := MeasurementSeries([]*models.Measurement{later, earlier}, models.FieldWeight, nil)

	require.Len(t, points, 2)
	assert.Equal(t, 83.0, points[0].Value)
	assert.Equal(t, 81.0, points[1].Value)
	assert.True(t, points[0].Date.Before(points[1].Date))
}

func TestDateRangeInclusiveEndpoints(t *testing.T) {
	var ms []*models.Measurement
	for _, d := range []int{1, 5, 10, 15} {
		m := models.NewMeasurement(day(2025, 3, d))
		m.Weight = float64(d)
		ms = append(ms, m)
	}

	r := &DateRange{Start: day(2025, 3, 5), End: day(2025, 3, 10)}
	points := MeasurementSeries(ms, models.FieldWeight, r)

	require.Len(t, points, 2)
	assert.Equal(t, 5.0, points[0].Value, "start date must be included")
	assert.Equal(t, 10.0, points[1].Value, "end date must be included")
}

func TestExerciseSeriesTakesMax(t *testing.T) {
	w := workoutWith(day(2025, 3, 3), "Squat",
		models.NewExerciseSet(10, 0, 0, 0),
		models.NewExerciseSet(15, 0, 0, 0),
		models.NewExerciseSet(8, 0, 0, 0),
	)

	points := ExerciseSeries([]*models.Workout{w}, "Squat", MetricReps, nil)

	require.Len(t, points, 1)
	assert.Equal(t, 15.0, points[0].Value, "max across sets, not sum or average")
}

func TestExerciseSeriesWeight(t *testing.T) {
	w := workoutWith(day(2025, 3, 3), "Squat",
		models.NewExerciseSet(5, 100, 0, 0),
		models.NewExerciseSet(5, 110, 0, 0),
	)

	points := ExerciseSeries([]*models.Workout{w}, "Squat", MetricWeight, nil)

	require.Len(t, points, 1)
	assert.Equal(t, 110.0, points[0].Value)
}

func TestExerciseSeriesTimeInMinutes(t *testing.T) {
	w := workoutWith(day(2025, 3, 3), "Plank",
		models.NewExerciseSet(0, 0, 0, 90),
		models.NewExerciseSet(0, 0, 0, 120),
	)

	points := ExerciseSeries([]*models.Workout{w}, "Plank", MetricTime, nil)

	require.Len(t, points, 1)
	assert.Equal(t, 2.0, points[0].Value, "seconds are reported as minutes")
}

func TestExerciseSeriesExactNameMatch(t *testing.T) {
	w := workoutWith(day(2025, 3, 3), "Bench Press", models.NewExerciseSet(5, 80, 0, 0))

	assert.Empty(t, ExerciseSeries([]*models.Workout{w}, "bench press", MetricWeight, nil))
	assert.Len(t, ExerciseSeries([]*models.Workout{w}, "Bench Press", MetricWeight, nil), 1)
}

func TestExerciseSeriesSkipsWorkoutsWithoutExercise(t *testing.T) {
	w1 := workoutWith(day(2025, 3, 3), "Squat", models.NewExerciseSet(5, 100, 0, 0))
	w2 := workoutWith(day(2025, 3, 5), "Deadlift", models.NewExerciseSet(3, 140, 0, 0))

	points := ExerciseSeries([]*models.Workout{w1, w2}, "Squat", MetricWeight, nil)
	assert.Len(t, points, 1)
}

func TestMonthlyWorkoutCounts(t *testing.T) {
	ws := []*models.Workout{
		models.NewWorkout(day(2025, 1, 5)),
		models.NewWorkout(day(2025, 1, 20)),
		models.NewWorkout(day(2025, 3, 3)),
		models.NewWorkout(day(2024, 12, 31)), // other year
	}

	counts := MonthlyWorkoutCounts(ws, 2025)

	assert.Equal(t, 2, counts[0])
	assert.Equal(t, 1, counts[2])

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 3, total, "counts must sum to workouts within the year")

	empty := MonthlyWorkoutCounts(ws, 2020)
	assert.Equal(t, [12]int{}, empty, "a year with no workouts is all-zero")
}

func TestExerciseNames(t *testing.T) {
	ws := []*models.Workout{
		workoutWith(day(2025, 3, 3), "Squat"),
		workoutWith(day(2025, 3, 5), "Bench Press"),
		workoutWith(day(2025, 3, 7), "Squat"),
	}

	names := ExerciseNames(ws)
	assert.Equal(t, []string{"Squat", "Bench Press"}, names)
}
