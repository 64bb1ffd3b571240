package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/gridpark/pkg/pipeline"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// maxCodeWidth truncates long flat codes in the table column.
const maxCodeWidth = 28

// =============================================================================
// Sorting
// =============================================================================

// sortMode orders the browser rows.
type sortMode int

const (
	sortEnumeration sortMode = iota
	sortGreenery
	sortAccessibility
	sortCost
	numSortModes
)

func (s sortMode) String() string {
	switch s {
	case sortGreenery:
		return "greenery ↓"
	case sortAccessibility:
		return "accessibility ↓"
	case sortCost:
		return "upfront cost ↑"
	default:
		return "enumeration order"
	}
}

// order returns a permutation of evals for mode; the input is not modified.
func (s sortMode) order(evals []*pipeline.Evaluation) []int {
	idx := make([]int, len(evals))
	for i := range idx {
		idx[i] = i
	}
	var key func(a, b *pipeline.Evaluation) int
	switch s {
	case sortGreenery:
		key = func(a, b *pipeline.Evaluation) int { return cmp.Compare(b.Scores.Greenery, a.Scores.Greenery) }
	case sortAccessibility:
		key = func(a, b *pipeline.Evaluation) int {
			return cmp.Compare(b.Scores.Accessibility, a.Scores.Accessibility)
		}
	case sortCost:
		key = func(a, b *pipeline.Evaluation) int { return cmp.Compare(a.Totals.CostUpfront, b.Totals.CostUpfront) }
	default:
		return idx
	}
	slices.SortStableFunc(idx, func(i, j int) int { return key(evals[i], evals[j]) })
	return idx
}

// =============================================================================
// LayoutBrowserModel - Interactive layout browser
// =============================================================================

// LayoutBrowserModel is the bubbletea model for paging through scored layouts.
type LayoutBrowserModel struct {
	Layouts  []*pipeline.Evaluation
	Order    []int // row → index into Layouts
	Sort     sortMode
	Cursor   int
	Offset   int
	Height   int
	Selected *pipeline.Evaluation
}

// NewLayoutBrowserModel creates a browser over evals in enumeration order.
func NewLayoutBrowserModel(evals []*pipeline.Evaluation) LayoutBrowserModel {
	return LayoutBrowserModel{
		Layouts: evals,
		Order:   sortEnumeration.order(evals),
		Height:  15,
	}
}

// Current returns the layout under the cursor, or nil when empty.
func (m LayoutBrowserModel) Current() *pipeline.Evaluation {
	if len(m.Order) == 0 {
		return nil
	}
	return m.Layouts[m.Order[m.Cursor]]
}

func (m LayoutBrowserModel) Init() tea.Cmd {
	return nil
}

func (m LayoutBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Order)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n := len(m.Order); n > 0 {
				m.Cursor = n - 1
				m.Offset = max(0, n-m.Height)
			}
		case "s":
			m.Sort = (m.Sort + 1) % numSortModes
			m.Order = m.Sort.order(m.Layouts)
			m.Cursor, m.Offset = 0, 0
		case "enter":
			m.Selected = m.Current()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m LayoutBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Park Layouts"))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render("sorted by " + m.Sort.String()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  s sort  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if len(m.Order) == 0 {
		b.WriteString(listDimStyle.Render("  no layouts"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Order))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		ev := m.Layouts[m.Order[i]]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			runewidth.Truncate(ev.FlatCode, maxCodeWidth, "…"),
			fmt.Sprintf("%d", ev.Totals.CostUpfront),
			fmt.Sprintf("%d", ev.NetCO2Yearly),
			formatScore(ev.Scores.Greenery),
			formatScore(ev.Scores.Accessibility),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Layout", "Upfront $", "Net CO2", "Greenery", "Access").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle()
			if col >= 2 {
				base = base.Align(lipgloss.Right)
			}
			if m.Offset+row == m.Cursor {
				return base.Foreground(colorGreen).Bold(true)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, t.Render(), "  ", m.detail()))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Order))))

	return b.String()
}

// detail renders the current layout's grid and secondary scores.
func (m LayoutBrowserModel) detail() string {
	ev := m.Current()
	if ev == nil {
		return ""
	}
	lines := []string{
		StyleHighlight.Render(ev.FlatCode),
		renderGrid(padGrid(ev.Pretty)),
		listDimStyle.Render(fmt.Sprintf("yearly %d $ · bench %s", ev.Totals.CostYearly, formatScore(ev.Scores.BenchScore))),
		listDimStyle.Render(fmt.Sprintf("paths ↕ %d ↔ %d", ev.Scores.VerticalPath, ev.Scores.HorizontalPath)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// padGrid right-pads glyph rows to a common display width. Emoji glyphs are
// double width, so byte or rune counts would misalign the border.
func padGrid(pretty string) string {
	rows := strings.Split(pretty, "\n")
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r))
	}
	for i, r := range rows {
		rows[i] = runewidth.FillRight(r, width)
	}
	return strings.Join(rows, "\n")
}
