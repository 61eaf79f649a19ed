// ABOUTME: CLI commands for managing body measurements.
// ABOUTME: Supports add, list, show, edit, and delete subcommands.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pwojcik/gymtrack/internal/models"
	"github.com/pwojcik/gymtrack/internal/store"
)

var (
	measureDate  string
	measureLimit int

	// One flag variable per measurement field, shared by add and edit.
	measureValues = func() map[models.MeasurementField]*float64 {
		m := make(map[models.MeasurementField]*float64, len(models.AllMeasurementFields))
		for _, f := range models.AllMeasurementFields {
			m[f] = new(float64)
		}
		return m
	}()

	photoFront string
	photoSide  string
	photoBack  string
)

var measureCmd = &cobra.Command{
	Use:     "measure",
	Aliases: []string{"m", "measurement"},
	Short:   "Manage body measurements",
	Long: `Track body measurements over time.

Each entry is dated and can record any combination of nine fields:

  weight (kg)
  shoulders, chest, biceps, forearm, abdomen, waist, thigh, calf (cm)

Entries can also carry progress photo references (front, side, back).

EXAMPLES:

  gymtrack measure add --weight 82.5 --waist 84
  gymtrack measure add --date 2025-03-03 --chest 104
  gymtrack measure edit abc123 --weight 82.0
  gymtrack measure list`,
}

var measureAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a measurement entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateOrNow(measureDate)
		if err != nil {
			return fmt.Errorf("invalid date: %s", measureDate)
		}

		m := models.NewMeasurement(date)
		for field, v := range measureValues {
			if *v > 0 {
				setMeasurementField(m, field, *v)
			}
		}
		if photoFront != "" || photoSide != "" || photoBack != "" {
			m.WithPhotos(models.Photos{Front: photoFront, Side: photoSide, Back: photoBack})
		}

		added := measurements.Add(m)
		persistMeasurement(added)

		color.Green("✓ Added measurement")
		fmt.Printf("  ID: %s\n", added.ID.String()[:8])
		printMeasurementFields(added)

		return nil
	},
}

var measureListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List measurements",
	RunE: func(cmd *cobra.Command, args []string) error {
		list := measurements.List()
		if len(list) > measureLimit {
			list = list[:measureLimit]
		}

		if len(list) == 0 {
			fmt.Println("No measurements found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range list {
			summary := ""
			if m.Weight > 0 {
				summary = fmt.Sprintf("%.1f kg", m.Weight)
			}
			fmt.Printf("%s %s %s\n",
				faint.Sprint(m.ID.String()[:8]),
				faint.Sprint(m.Date.Format("2006-01-02")),
				summary)
		}

		return nil
	},
}

var measureShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show measurement details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := measurements.Find(args[0])
		if err != nil {
			return fmt.Errorf("measurement not found: %s", args[0])
		}

		fmt.Printf("Measurement: %s\n", m.ID.String()[:8])
		fmt.Printf("Date: %s\n", m.Date.Format("2006-01-02"))
		printMeasurementFields(m)

		if m.Photos != (models.Photos{}) {
			fmt.Println("\nPhotos:")
			if m.Photos.Front != "" {
				fmt.Printf("  front: %s\n", m.Photos.Front)
			}
			if m.Photos.Side != "" {
				fmt.Printf("  side: %s\n", m.Photos.Side)
			}
			if m.Photos.Back != "" {
				fmt.Printf("  back: %s\n", m.Photos.Back)
			}
		}

		return nil
	},
}

var measureEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a measurement entry",
	Long: `Edit fields of an existing measurement. Only the flags you pass are
changed; everything else stays as recorded.

Examples:
  gymtrack measure edit abc123 --weight 82.0
  gymtrack measure edit abc123 --date 2025-03-04 --waist 83`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := measurements.Find(args[0])
		if err != nil {
			return fmt.Errorf("measurement not found: %s", args[0])
		}

		var patch store.MeasurementPatch
		if measureDate != "" {
			t, err := parseDate(measureDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s", measureDate)
			}
			patch.Date = &t
		}
		for field, v := range measureValues {
			if cmd.Flags().Changed(string(field)) {
				patchMeasurementField(&patch, field, *v)
			}
		}
		if photoFront != "" || photoSide != "" || photoBack != "" {
			patch.Photos = &models.Photos{Front: photoFront, Side: photoSide, Back: photoBack}
		}

		measurements.Update(m.ID.String(), patch)
		updated, _ := measurements.Get(m.ID.String())
		persistMeasurement(updated)

		color.Green("✓ Updated measurement %s", m.ID.String()[:8])
		printMeasurementFields(updated)

		return nil
	},
}

var measureDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a measurement entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := measurements.Find(args[0])
		if err != nil {
			return fmt.Errorf("measurement not found: %s", args[0])
		}

		measurements.Delete(m.ID.String())
		persistMeasurementDelete(m.ID.String())

		color.Yellow("✗ Deleted measurement")
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(m.ID.String()[:8]),
			m.Date.Format("2006-01-02"))

		return nil
	},
}

func printMeasurementFields(m *models.Measurement) {
	for _, f := range models.AllMeasurementFields {
		if v := m.FieldValue(f); v > 0 {
			fmt.Printf("  %s %.1f %s\n", padRight(string(f), 10), v, models.MeasurementFieldUnits[f])
		}
	}
}

func setMeasurementField(m *models.Measurement, f models.MeasurementField, v float64) {
	switch f {
	case models.FieldWeight:
		m.Weight = v
	case models.FieldShoulders:
		m.Shoulders = v
	case models.FieldChest:
		m.Chest = v
	case models.FieldBiceps:
		m.Biceps = v
	case models.FieldForearm:
		m.Forearm = v
	case models.FieldAbdomen:
		m.Abdomen = v
	case models.FieldWaist:
		m.Waist = v
	case models.FieldThigh:
		m.Thigh = v
	case models.FieldCalf:
		m.Calf = v
	}
}

func patchMeasurementField(p *store.MeasurementPatch, f models.MeasurementField, v float64) {
	value := v
	switch f {
	case models.FieldWeight:
		p.Weight = &value
	case models.FieldShoulders:
		p.Shoulders = &value
	case models.FieldChest:
		p.Chest = &value
	case models.FieldBiceps:
		p.Biceps = &value
	case models.FieldForearm:
		p.Forearm = &value
	case models.FieldAbdomen:
		p.Abdomen = &value
	case models.FieldWaist:
		p.Waist = &value
	case models.FieldThigh:
		p.Thigh = &value
	case models.FieldCalf:
		p.Calf = &value
	}
}

func dateOrNow(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	return parseDate(value)
}

func addMeasurementFlags(cmd *cobra.Command) {
	for _, f := range models.AllMeasurementFields {
		unit := models.MeasurementFieldUnits[f]
		cmd.Flags().Float64Var(measureValues[f], string(f), 0, fmt.Sprintf("%s in %s", f, unit))
	}
}

func init() {
	addMeasurementFlags(measureAddCmd)
	measureAddCmd.Flags().StringVarP(&measureDate, "date", "d", "", "measurement date (YYYY-MM-DD)")
	measureAddCmd.Flags().StringVar(&photoFront, "photo-front", "", "front photo reference")
	measureAddCmd.Flags().StringVar(&photoSide, "photo-side", "", "side photo reference")
	measureAddCmd.Flags().StringVar(&photoBack, "photo-back", "", "back photo reference")

	addMeasurementFlags(measureEditCmd)
	measureEditCmd.Flags().StringVarP(&measureDate, "date", "d", "", "new measurement date (YYYY-MM-DD)")
	measureEditCmd.Flags().StringVar(&photoFront, "photo-front", "", "front photo reference")
	measureEditCmd.Flags().StringVar(&photoSide, "photo-side", "", "side photo reference")
	measureEditCmd.Flags().StringVar(&photoBack, "photo-back", "", "back photo reference")

	measureListCmd.Flags().IntVarP(&measureLimit, "limit", "n", 20, "max number of results")

	measureCmd.AddCommand(measureAddCmd)
	measureCmd.AddCommand(measureListCmd)
	measureCmd.AddCommand(measureShowCmd)
	measureCmd.AddCommand(measureEditCmd)
	measureCmd.AddCommand(measureDeleteCmd)
	rootCmd.AddCommand(measureCmd)
}
