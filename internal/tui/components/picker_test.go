package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeRunes(p Picker, s string) Picker {
	for _, r := range s {
		p, _, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return p
}

func TestPickerSelection(t *testing.T) {
	p := NewPicker()
	p.Show("Filter by rating", []string{"G", "PG", "PG-13", "R", "TV-MA"})

	p, _, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _, outcome := p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if outcome != PickerSelected {
		t.Fatalf("outcome = %v, want PickerSelected", outcome)
	}
	if got := p.Selected(); got != "PG-13" {
		t.Errorf("Selected() = %q, want PG-13", got)
	}
	if p.IsVisible() {
		t.Error("picker should hide after selection")
	}
}

func TestPickerNarrowing(t *testing.T) {
	p := NewPicker()
	p.Show("Filter by type", []string{"Any", "Movie", "TV Show"})

	p = typeRunes(p, "mov")
	if len(p.matches) != 1 || p.matches[0] != "Movie" {
		t.Fatalf("matches = %v, want just Movie", p.matches)
	}

	p, _, outcome := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if outcome != PickerSelected || p.Selected() != "Movie" {
		t.Errorf("outcome = %v, Selected() = %q", outcome, p.Selected())
	}
}

func TestPickerCancel(t *testing.T) {
	p := NewPicker()
	p.Show("Sort by", []string{"Title (A-Z)"})

	p, _, outcome := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if outcome != PickerCancelled {
		t.Fatalf("outcome = %v, want PickerCancelled", outcome)
	}
	if p.IsVisible() {
		t.Error("picker should hide on cancel")
	}
}

func TestPickerWindowFollowsCursor(t *testing.T) {
	options := make([]string, 15)
	for i := range options {
		options[i] = string(rune('a' + i))
	}
	p := NewPicker()
	p.Show("Filter by rating", options)

	for i := 0; i < 12; i++ {
		p, _, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if p.cursor != 12 {
		t.Fatalf("cursor = %d, want 12", p.cursor)
	}
	if p.cursor < p.offset || p.cursor >= p.offset+maxPickerRows {
		t.Errorf("cursor %d outside the rendered window [%d, %d)", p.cursor, p.offset, p.offset+maxPickerRows)
	}

	// Selection picks the row under the cursor, not a truncated one.
	p, _, outcome := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if outcome != PickerSelected || p.Selected() != options[12] {
		t.Errorf("outcome = %v, Selected() = %q, want %q", outcome, p.Selected(), options[12])
	}

	// Scrolling back up pulls the window along too.
	p.Show("Filter by rating", options)
	for i := 0; i < 14; i++ {
		p, _, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	for i := 0; i < 14; i++ {
		p, _, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	if p.cursor != 0 || p.offset != 0 {
		t.Errorf("cursor = %d, offset = %d, want both 0", p.cursor, p.offset)
	}
}

func TestPickerEnterWithNoMatches(t *testing.T) {
	p := NewPicker()
	p.Show("Filter by type", []string{"Movie", "TV Show"})
	p = typeRunes(p, "zzz")

	p, _, outcome := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if outcome != PickerOpen {
		t.Errorf("outcome = %v, enter with no matches must not select", outcome)
	}
	if !p.IsVisible() {
		t.Error("picker should stay open")
	}
}
