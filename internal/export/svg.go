package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/bouncesim/internal/bounce"
)

const DefaultStroke = "#00ff88"

// TrajectorySVG draws height against time as a single SVG path. Time runs
// left to right and the ground sits on the bottom edge.
func TrajectorySVG(samples []bounce.Sample, width, height int, stroke string) string {
	if len(samples) < 2 {
		return ""
	}
	if stroke == "" {
		stroke = DefaultStroke
	}

	maxT := samples[len(samples)-1].T
	maxY := 0.0
	for _, s := range samples {
		if s.Height > maxY {
			maxY = s.Height
		}
	}
	if maxT == 0 {
		maxT = 1
	}
	if maxY == 0 {
		maxY = 1
	}

	// 5% margin on every side
	padX, padY := float64(width)*0.05, float64(height)*0.05
	plotW, plotH := float64(width)-2*padX, float64(height)-2*padY

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#444466" stroke-width="1"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height,
		padX, padY+plotH, padX+plotW, padY+plotH,
		stroke)

	for i, s := range samples {
		x := padX + s.T/maxT*plotW
		y := padY + plotH - s.Height/maxY*plotH
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>
`)
	return sb.String()
}

func WriteTrajectorySVG(w io.Writer, samples []bounce.Sample, width, height int) error {
	svg := TrajectorySVG(samples, width, height, DefaultStroke)
	if svg == "" {
		return fmt.Errorf("export: need at least 2 samples, got %d", len(samples))
	}
	_, err := io.WriteString(w, svg)
	return err
}

// SaveTrajectorySVG writes the SVG to path. Nothing is left behind on
// failure.
func SaveTrajectorySVG(path string, samples []bounce.Sample, width, height int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return WriteTrajectorySVG(f, samples, width, height)
}
