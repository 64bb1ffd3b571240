package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/gridpark/pkg/pipeline"
)

func browserFixture(t *testing.T, codes ...string) LayoutBrowserModel {
	t.Helper()
	evals := make([]*pipeline.Evaluation, len(codes))
	for i, code := range codes {
		ev, err := pipeline.Evaluate(code)
		if err != nil {
			t.Fatalf("Evaluate(%s): %v", code, err)
		}
		evals[i] = ev
	}
	return NewLayoutBrowserModel(evals)
}

func press(t *testing.T, m LayoutBrowserModel, msg tea.KeyMsg) (LayoutBrowserModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(LayoutBrowserModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return bm, cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySort  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}
)

func TestBrowserNavigation(t *testing.T) {
	m := browserFixture(t, "GG_GG", "GG_GT", "GG_TT")
	m.Height = 2

	m, _ = press(t, m, keyUp)
	if m.Cursor != 0 {
		t.Errorf("cursor moved above first row: %d", m.Cursor)
	}
	m, _ = press(t, m, keyDown)
	m, _ = press(t, m, keyDown)
	m, _ = press(t, m, keyDown)
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", m.Cursor)
	}
	if m.Offset != 1 {
		t.Errorf("Offset = %d, want 1", m.Offset)
	}
	m, _ = press(t, m, keyUp)
	m, _ = press(t, m, keyUp)
	if m.Offset != 0 {
		t.Errorf("Offset = %d after scrolling back, want 0", m.Offset)
	}
}

func TestBrowserSelect(t *testing.T) {
	m := browserFixture(t, "GG_GG", "TT_TT")
	m, _ = press(t, m, keyDown)
	m, cmd := press(t, m, keyEnter)
	if cmd == nil {
		t.Error("enter should quit")
	}
	if m.Selected == nil || m.Selected.FlatCode != "TT_TT" {
		t.Errorf("Selected = %v, want TT_TT", m.Selected)
	}
}

func TestBrowserQuitWithoutSelection(t *testing.T) {
	m := browserFixture(t, "GG_GG")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("q should quit")
	}
	if m.Selected != nil {
		t.Error("quit should not select")
	}
}

func TestBrowserSort(t *testing.T) {
	m := browserFixture(t, "TT_TT", "GG_GG", "BP_GG")

	// enumeration → greenery → accessibility → cost
	for range 3 {
		m, _ = press(t, m, keySort)
	}
	if m.Sort != sortCost {
		t.Fatalf("Sort = %v, want cost", m.Sort)
	}
	var got []string
	for _, i := range m.Order {
		got = append(got, m.Layouts[i].FlatCode)
	}
	if strings.Join(got, " ") != "GG_GG BP_GG TT_TT" {
		t.Errorf("cost order = %v", got)
	}

	m, _ = press(t, m, keySort)
	if m.Sort != sortEnumeration || m.Current().FlatCode != "TT_TT" {
		t.Errorf("sort did not wrap to enumeration order")
	}
}

func TestBrowserWindowSize(t *testing.T) {
	m := browserFixture(t, "GG_GG")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	if h := next.(LayoutBrowserModel).Height; h != 22 {
		t.Errorf("Height = %d, want 22", h)
	}
	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 4})
	if h := next.(LayoutBrowserModel).Height; h != 5 {
		t.Errorf("Height = %d, want floor of 5", h)
	}
}

func TestBrowserView(t *testing.T) {
	m := browserFixture(t, "GG_GG", "BP_GG")
	view := m.View()
	for _, want := range []string{"Park Layouts", "GG_GG", "BP_GG", "[1/2]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	empty := NewLayoutBrowserModel(nil)
	if !strings.Contains(empty.View(), "no layouts") {
		t.Error("empty view should say so")
	}
	if empty.Current() != nil {
		t.Error("Current on empty browser should be nil")
	}
}

func TestPadGrid(t *testing.T) {
	got := padGrid("a\nbbb")
	if got != "a  \nbbb" {
		t.Errorf("padGrid = %q", got)
	}

	ev, err := pipeline.Evaluate("GT_PB")
	if err != nil {
		t.Fatal(err)
	}
	rows := strings.Split(padGrid(ev.Pretty), "\n")
	for _, r := range rows[1:] {
		if runewidth.StringWidth(r) != runewidth.StringWidth(rows[0]) {
			t.Errorf("row %q width differs from %q", r, rows[0])
		}
	}
}
