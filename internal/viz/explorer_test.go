package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/bouncesim/internal/bounce"
)

func press(t *testing.T, e Explorer, key string) Explorer {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m, _ := e.Update(msg)
	next, ok := m.(Explorer)
	if !ok {
		t.Fatalf("expected Explorer, got %T", m)
	}
	return next
}

func TestExplorerCount(t *testing.T) {
	e := NewExplorer(1, bounce.DefaultParams(), 6)

	e = press(t, e, "down")
	if e.Count() != 1 {
		t.Errorf("count should not drop below 1, got %d", e.Count())
	}

	e = press(t, e, "up")
	e = press(t, e, "k")
	if e.Count() != 3 {
		t.Errorf("expected count 3, got %d", e.Count())
	}
	if e.Result() != bounce.ComputeDefault(3) {
		t.Errorf("result not recomputed: %+v", e.Result())
	}

	e = press(t, e, "j")
	if e.Count() != 2 {
		t.Errorf("expected count 2, got %d", e.Count())
	}
}

func TestExplorerHeight(t *testing.T) {
	e := NewExplorer(2, bounce.DefaultParams(), 6)

	e = press(t, e, "+")
	if e.Params().Height != 200 {
		t.Errorf("expected height 200, got %f", e.Params().Height)
	}
	if e.Result().BounceHeight != 50 {
		t.Errorf("expected bounce height 50, got %f", e.Result().BounceHeight)
	}

	e = press(t, e, "-")
	e = press(t, e, "-")
	if e.Params().Height != 50 {
		t.Errorf("expected height 50, got %f", e.Params().Height)
	}

	e = press(t, e, "r")
	if e.Params().Height != bounce.DefaultHeight {
		t.Errorf("expected default height after reset, got %f", e.Params().Height)
	}
}

func TestExplorerQuit(t *testing.T) {
	e := NewExplorer(1, bounce.DefaultParams(), 6)
	_, cmd := e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestExplorerView(t *testing.T) {
	e := NewExplorer(10, bounce.DefaultParams(), 6)
	view := e.View()

	for _, want := range []string{"bounce 10", "0.097656", "299.707031", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPlotTrajectory(t *testing.T) {
	samples, err := bounce.Trajectory(3, bounce.DefaultParams(), 0.05)
	if err != nil {
		t.Fatal(err)
	}

	plot := PlotTrajectory(samples, 60, 10)
	if !strings.Contains(plot, "height (m)") {
		t.Errorf("expected caption, got %q", plot)
	}
	if lines := strings.Count(plot, "\n"); lines < 10 {
		t.Errorf("expected at least 10 lines, got %d", lines)
	}

	if PlotTrajectory(nil, 60, 10) != "" {
		t.Error("expected empty plot for no samples")
	}
}

func TestSparkline(t *testing.T) {
	s := Sparkline([]float64{100, 50, 25})
	if strings.Count(s, "█") != 1 {
		t.Errorf("expected one full bar, got %q", s)
	}
	if Sparkline(nil) != "" {
		t.Error("expected empty sparkline")
	}
}
