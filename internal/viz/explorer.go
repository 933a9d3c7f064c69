package viz

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/bouncesim/internal/bounce"
)

const maxExplorerCount = 1000

// Explorer is a bubbletea model that recomputes the bounce report as the
// user changes n or the drop height.
type Explorer struct {
	n         int
	params    bounce.Params
	precision int
	result    bounce.Result
	width     int
}

func NewExplorer(n int, p bounce.Params, precision int) Explorer {
	if n < 1 {
		n = 1
	}
	e := Explorer{n: n, params: p, precision: precision, width: 60}
	e.recompute()
	return e
}

func (e *Explorer) recompute() {
	e.result = bounce.Compute(e.n, e.params)
}

func (e Explorer) Count() int            { return e.n }
func (e Explorer) Params() bounce.Params { return e.params }
func (e Explorer) Result() bounce.Result { return e.result }

func (e Explorer) Init() tea.Cmd { return nil }

func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return e, tea.Quit
		case "up", "k":
			if e.n < maxExplorerCount {
				e.n++
			}
		case "down", "j":
			if e.n > 1 {
				e.n--
			}
		case "+", "=":
			e.params.Height *= 2
		case "-", "_":
			e.params.Height /= 2
		case "r":
			e.params.Height = bounce.DefaultHeight
		default:
			return e, nil
		}
		e.recompute()
	case tea.WindowSizeMsg:
		e.width = msg.Width
	}
	return e, nil
}

func (e Explorer) View() string {
	var b strings.Builder
	b.WriteString(RenderReport(e.result, e.params, e.precision))
	b.WriteString("\n")
	b.WriteString(Separator(e.width))
	b.WriteString("\n")
	b.WriteString(KeyHint.Render("↑/k n+1  ↓/j n-1  +/- height ×2/÷2  r reset  q quit"))
	b.WriteString("\n")
	return b.String()
}
