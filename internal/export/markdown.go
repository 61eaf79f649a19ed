// ABOUTME: Markdown rendering of the export data.
// ABOUTME: One table per store, suitable for sharing or documentation.
package export

import (
	"fmt"
	"strings"
)

// Markdown renders the export as markdown tables.
func (d *Data) Markdown() string {
	var b strings.Builder

	b.WriteString("# Gymtrack Export\n\n")
	b.WriteString(fmt.Sprintf("Exported: %s\n\n", d.ExportedAt.Format("2006-01-02 15:04")))

	b.WriteString("## Workouts\n\n")
	if len(d.Workouts) == 0 {
		b.WriteString("No workouts.\n\n")
	} else {
		b.WriteString("| Date | Exercises | Sets |\n")
		b.WriteString("|------|-----------|------|\n")
		for _, w := range d.Workouts {
			names := make([]string, 0, len(w.Exercises))
			sets := 0
			for _, ex := range w.Exercises {
				names = append(names, ex.Name)
				sets += len(ex.Sets)
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %d |\n",
				w.Date.Format("2006-01-02"), strings.Join(names, ", "), sets))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Measurements\n\n")
	if len(d.Measurements) == 0 {
		b.WriteString("No measurements.\n\n")
	} else {
		b.WriteString("| Date | Weight | Chest | Waist | Biceps | Thigh |\n")
		b.WriteString("|------|--------|-------|-------|--------|-------|\n")
		for _, m := range d.Measurements {
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
				m.Date.Format("2006-01-02"),
				cell(m.Weight), cell(m.Chest), cell(m.Waist), cell(m.Biceps), cell(m.Thigh)))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Goals\n\n")
	if len(d.Goals) == 0 {
		b.WriteString("No goals.\n")
	} else {
		b.WriteString("| Title | Current | Target | Unit | Deadline | State |\n")
		b.WriteString("|-------|---------|--------|------|----------|-------|\n")
		for _, g := range d.Goals {
			b.WriteString(fmt.Sprintf("| %s | %.1f | %.1f | %s | %s | %s |\n",
				g.Title, g.CurrentValue, g.TargetValue, g.Unit,
				g.Deadline.Format("2006-01-02"), g.State()))
		}
	}

	return b.String()
}

// cell formats a measurement value, leaving absent (zero) values blank.
func cell(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f", v)
}
