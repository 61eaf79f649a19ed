// ABOUTME: CLI commands for progress analysis.
// ABOUTME: Renders exercise series, measurement series, and monthly counts.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pwojcik/gymtrack/internal/analysis"
	"github.com/pwojcik/gymtrack/internal/models"
)

var (
	analysisStart string
	analysisEnd   string
)

var analysisCmd = &cobra.Command{
	Use:     "analysis",
	Aliases: []string{"a", "stats"},
	Short:   "Analyze progress",
	Long: `Analyze your training data.

SERIES:

  'analysis exercise' charts one exercise across all workouts that contain
  it. For each workout, the best set wins: the maximum reps, weight,
  distance, or time across the exercise's sets that day. Time is reported
  in minutes.

  'analysis measure' charts one body-measurement field over time.

  Both accept an optional --from/--to date range. The range is inclusive on
  both ends at day granularity.

EXAMPLES:

  gymtrack analysis exercise "Squat" weight
  gymtrack analysis exercise "Running" distance --from 2025-01-01 --to 2025-06-30
  gymtrack analysis measure waist
  gymtrack analysis months 2025`,
}

var analysisExerciseCmd = &cobra.Command{
	Use:   "exercise <name> <metric>",
	Short: "Chart an exercise metric over time",
	Long: `Chart one exercise's best-set value per workout.

The metric is one of: reps, weight, distance, time.
Exercise names match exactly, including case.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, metric := args[0], args[1]
		if !analysis.IsValidExerciseMetric(metric) {
			return fmt.Errorf("unknown metric: %s (want reps, weight, distance, or time)", metric)
		}

		within, err := flagRange()
		if err != nil {
			return err
		}

		points := analysis.ExerciseSeries(workouts.List(), name, analysis.ExerciseMetric(metric), within)
		if len(points) == 0 {
			fmt.Println("No data points found.")
			if names := analysis.ExerciseNames(workouts.List()); len(names) > 0 {
				fmt.Printf("Known exercises: %s\n", strings.Join(names, ", "))
			}
			return nil
		}

		fmt.Printf("%s / %s\n\n", name, metric)
		printSeries(points)

		return nil
	},
}

var analysisMeasureCmd = &cobra.Command{
	Use:   "measure <field>",
	Short: "Chart a body-measurement field over time",
	Long: `Chart one measurement field over time.

The field is one of: weight, shoulders, chest, biceps, forearm, abdomen,
waist, thigh, calf.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field := args[0]
		if !models.IsValidMeasurementField(field) {
			return fmt.Errorf("unknown measurement field: %s", field)
		}

		within, err := flagRange()
		if err != nil {
			return err
		}

		points := analysis.MeasurementSeries(measurements.List(), models.MeasurementField(field), within)
		if len(points) == 0 {
			fmt.Println("No data points found.")
			return nil
		}

		fmt.Printf("%s (%s)\n\n", field, models.MeasurementFieldUnits[models.MeasurementField(field)])
		printSeries(points)

		return nil
	},
}

var analysisMonthsCmd = &cobra.Command{
	Use:   "months [year]",
	Short: "Workouts per month for a year",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year := time.Now().Year()
		if len(args) == 1 {
			y, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year: %s", args[0])
			}
			year = y
		}

		counts := analysis.MonthlyWorkoutCounts(workouts.List(), year)

		fmt.Printf("Workouts in %d\n\n", year)
		faint := color.New(color.Faint)
		for i, c := range counts {
			bar := strings.Repeat("█", c)
			fmt.Printf("%s %s %d\n", faint.Sprint(time.Month(i+1).String()[:3]), padRight(bar, 20), c)
		}

		return nil
	},
}

// printSeries renders points as a date/value list with a relative bar.
func printSeries(points []analysis.Point) {
	max := 0.0
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}

	faint := color.New(color.Faint)
	for _, p := range points {
		width := 0
		if max > 0 {
			width = int(p.Value / max * 30)
		}
		fmt.Printf("%s %8.2f %s\n",
			faint.Sprint(p.Date.Format("2006-01-02")),
			p.Value,
			strings.Repeat("▪", width))
	}
}

func flagRange() (*analysis.DateRange, error) {
	if analysisStart == "" && analysisEnd == "" {
		return nil, nil
	}
	if analysisStart == "" || analysisEnd == "" {
		return nil, fmt.Errorf("--from and --to must be given together")
	}

	from, err := parseDate(analysisStart)
	if err != nil {
		return nil, fmt.Errorf("invalid --from date: %s", analysisStart)
	}
	to, err := parseDate(analysisEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid --to date: %s", analysisEnd)
	}

	return &analysis.DateRange{Start: from, End: to}, nil
}

func init() {
	for _, cmd := range []*cobra.Command{analysisExerciseCmd, analysisMeasureCmd} {
		cmd.Flags().StringVar(&analysisStart, "from", "", "range start date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&analysisEnd, "to", "", "range end date (YYYY-MM-DD), inclusive")
	}

	analysisCmd.AddCommand(analysisExerciseCmd)
	analysisCmd.AddCommand(analysisMeasureCmd)
	analysisCmd.AddCommand(analysisMonthsCmd)
	rootCmd.AddCommand(analysisCmd)
}
