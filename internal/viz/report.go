package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/bouncesim/internal/bounce"
)

// RenderReport formats r in a bordered panel with precision decimals.
func RenderReport(r bounce.Result, p bounce.Params, precision int) string {
	rows := []struct {
		label string
		value float64
	}{
		{"bounce height (m)", r.BounceHeight},
		{"total distance (m)", r.TotalDistance},
		{"total time (s)", r.TotalTime},
	}

	var b strings.Builder
	b.WriteString(Title.Render(fmt.Sprintf("bounce %d", r.Count)))
	b.WriteString(Subtle.Render(fmt.Sprintf("  h0=%gm g=%gm/s²", p.Height, p.Gravity)))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(MetricLabel.Render(fmt.Sprintf("%-20s", row.label)))
		b.WriteString(MetricValue.Render(fmt.Sprintf("%.*f", precision, row.value)))
		b.WriteString("\n")
	}

	apexes := make([]float64, 0, r.Count+1)
	for i := 0; i <= r.Count && i < 64; i++ {
		apexes = append(apexes, p.ApexHeight(i))
	}
	b.WriteString("\n")
	b.WriteString(MetricLabel.Render("apexes  "))
	b.WriteString(Sparkline(apexes))

	return Panel.Render(b.String())
}
