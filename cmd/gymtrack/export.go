// ABOUTME: CLI commands for exporting and importing gymtrack data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pwojcik/gymtrack/internal/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export gymtrack data",
	Long: `Export workouts, measurements, goals, and the exercise memory.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown tables (for documentation/sharing)

EXAMPLES:

  gymtrack export json                  # Export all data as JSON
  gymtrack export json -o backup.json   # Save to file
  gymtrack export yaml                  # Export as YAML
  gymtrack export markdown              # Export as Markdown tables`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		d := export.Collect(workouts, measurements, goals)

		var data []byte
		var err error
		switch format {
		case "json":
			data, err = d.JSON()
		case "yaml":
			data, err = d.YAML()
		case "markdown":
			data = []byte(d.Markdown())
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import gymtrack data from JSON",
	Long: `Import data from a JSON backup file.

The file replaces the current records wholesale: workouts, measurements,
goals, and the exercise memory all become what the file holds.

EXAMPLES:

  gymtrack import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		raw, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		d, err := export.ParseJSON(raw)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		export.Apply(d, workouts, measurements, goals)

		if charmClient != nil {
			for _, w := range workouts.List() {
				if err := charmClient.SaveWorkout(w); err != nil {
					return fmt.Errorf("failed to persist workout: %w", err)
				}
			}
			for _, m := range measurements.List() {
				if err := charmClient.SaveMeasurement(m); err != nil {
					return fmt.Errorf("failed to persist measurement: %w", err)
				}
			}
			if err := charmClient.SaveGoals(goals.List()); err != nil {
				return fmt.Errorf("failed to persist goals: %w", err)
			}
			if err := charmClient.SaveExercises(workouts.SavedExercises()); err != nil {
				return fmt.Errorf("failed to persist exercise memory: %w", err)
			}
		}

		color.Green("✓ Imported from %s", filename)
		fmt.Printf("  %d workouts, %d measurements, %d goals\n",
			len(workouts.List()), len(measurements.List()), len(goals.List()))

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
