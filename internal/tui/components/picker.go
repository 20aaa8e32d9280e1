package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fletnix/fletnix/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// maxPickerRows bounds how many options render at once.
const maxPickerRows = 10

// PickerOutcome is the result of feeding a message to the picker.
type PickerOutcome int

const (
	PickerOpen PickerOutcome = iota
	PickerCancelled
	PickerSelected
)

// Picker is a modal list of options narrowed by fuzzy matching as the
// user types.
type Picker struct {
	title   string
	options []string
	input   textinput.Model
	matches []string
	cursor  int
	offset  int // first rendered row; keeps the cursor inside the window
	visible bool
	width   int
}

// NewPicker creates a hidden picker
func NewPicker() Picker {
	ti := textinput.New()
	ti.Placeholder = "Type to narrow..."
	ti.CharLimit = 60
	ti.Width = 28
	ti.Prompt = "> "
	ti.PromptStyle = styles.AccentStyle
	return Picker{input: ti}
}

// Show opens the picker over the given options
func (p *Picker) Show(title string, options []string) {
	p.title = title
	p.options = options
	p.matches = options
	p.cursor = 0
	p.offset = 0
	p.visible = true
	p.input.SetValue("")
	p.input.Focus()
}

// Hide closes the picker
func (p *Picker) Hide() {
	p.visible = false
	p.input.Blur()
}

// IsVisible reports whether the picker is open
func (p Picker) IsVisible() bool { return p.visible }

// Selected returns the option under the cursor
func (p Picker) Selected() string {
	if len(p.matches) == 0 || p.cursor >= len(p.matches) {
		return ""
	}
	return p.matches[p.cursor]
}

// refilter narrows the options to the current query
func (p *Picker) refilter() {
	query := p.input.Value()
	if query == "" {
		p.matches = p.options
	} else {
		ranked := fuzzy.Find(query, p.options)
		p.matches = make([]string, len(ranked))
		for i, m := range ranked {
			p.matches[i] = m.Str
		}
	}
	if p.cursor >= len(p.matches) {
		p.cursor = 0
	}
	p.clampWindow()
}

// clampWindow scrolls the rendered window so the cursor stays visible.
func (p *Picker) clampWindow() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+maxPickerRows {
		p.offset = p.cursor - maxPickerRows + 1
	}
	if max := len(p.matches) - maxPickerRows; max < 0 {
		p.offset = 0
	} else if p.offset > max {
		p.offset = max
	}
}

// Update feeds a message to the picker. The returned outcome tells the
// caller whether a selection or a cancel happened; Selected holds the
// choice on PickerSelected.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd, PickerOutcome) {
	if !p.visible {
		return p, nil, PickerOpen
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.Hide()
			return p, nil, PickerCancelled
		case "enter":
			if len(p.matches) > 0 {
				p.Hide()
				return p, nil, PickerSelected
			}
			return p, nil, PickerOpen
		case "up", "ctrl+k":
			if p.cursor > 0 {
				p.cursor--
				p.clampWindow()
			}
			return p, nil, PickerOpen
		case "down", "ctrl+j":
			if p.cursor < len(p.matches)-1 {
				p.cursor++
				p.clampWindow()
			}
			return p, nil, PickerOpen
		}
	}

	var cmd tea.Cmd
	before := p.input.Value()
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.refilter()
	}
	return p, cmd, PickerOpen
}

// View renders the picker modal
func (p Picker) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(p.title))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	end := p.offset + maxPickerRows
	if end > len(p.matches) {
		end = len(p.matches)
	}
	rows := p.matches[p.offset:end]
	if len(rows) == 0 {
		b.WriteString(styles.DimStyle.Render("no matches"))
	}
	for i, opt := range rows {
		if p.offset+i == p.cursor {
			b.WriteString(styles.SelectedStyle.Render(opt))
		} else {
			b.WriteString("  " + opt)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("enter: select  •  esc: cancel"))
	return styles.ModalStyle.Render(lipgloss.NewStyle().Width(34).Render(b.String()))
}
