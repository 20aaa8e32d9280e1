package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fletnix/fletnix/internal/domain"
	"github.com/fletnix/fletnix/internal/service"
	"github.com/fletnix/fletnix/internal/tui/styles"
)

// detailView shows a single catalog entry. A failed fetch keeps whatever
// was previously displayed next to the error message.
type detailView struct {
	catalog *service.CatalogService
	keys    KeyMap

	show    *domain.Show
	loading bool
	errMsg  string
	spinner spinner.Model

	width  int
	height int
}

func newDetailView(catalog *service.CatalogService, keys KeyMap) detailView {
	return detailView{catalog: catalog, keys: keys, spinner: newSpinner()}
}

// mount fetches the show for a route parameter.
func (v *detailView) mount(id string) tea.Cmd {
	v.loading = true
	v.errMsg = ""
	return tea.Batch(GetShowCmd(v.catalog, id), v.spinner.Tick)
}

func (v detailView) update(msg tea.Msg) (detailView, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowLoadedMsg:
		show := msg.Show
		v.show = &show
		v.loading = false
		v.errMsg = ""
		return v, nil

	case ShowFailedMsg:
		v.loading = false
		v.errMsg = msg.Err.Error()
		return v, nil

	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Escape):
			return v, navigateBack()
		}
	}
	return v, nil
}

func (v detailView) view() string {
	var b strings.Builder

	if v.errMsg != "" {
		b.WriteString(styles.ErrorBannerStyle.Render(v.errMsg))
		b.WriteString("\n\n")
	}

	switch {
	case v.show == nil && v.loading:
		b.WriteString(v.spinner.View())
		b.WriteString(styles.DimStyle.Render(" Loading..."))
	case v.show == nil:
		b.WriteString(styles.DimStyle.Render("Nothing to display."))
	default:
		b.WriteString(v.renderShow(*v.show))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.DimStyle.Render("bksp/esc: back  •  L: logout  •  q: quit"))
	return styles.ViewStyle.Render(b.String())
}

func (v detailView) renderShow(show domain.Show) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(show.Title))
	b.WriteString("  ")
	b.WriteString(styles.RatingStyle(show.Rating).Render(show.Rating))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(
		fmt.Sprintf("%s  •  %d  •  %s", show.Type, show.ReleaseYear, show.Duration)))
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render(show.RatingDescription()))
	b.WriteString("\n\n")

	if show.Description != "" {
		b.WriteString(show.Description)
		b.WriteString("\n\n")
	}

	b.WriteString(renderList("Genres", show.GenreList()))
	b.WriteString(renderList("Director", show.DirectorList()))
	b.WriteString(renderList("Cast", show.CastList()))
	b.WriteString(renderList("Country", show.CountryList()))

	if show.DateAdded != "" {
		b.WriteString(styles.SubtitleStyle.Render("Added"))
		b.WriteString("  " + formatDate(show.DateAdded))
		b.WriteString("\n")
	}

	return b.String()
}

func renderList(label string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return styles.SubtitleStyle.Render(label) + "  " + strings.Join(items, ", ") + "\n"
}

// formatDate renders a date string in long form, passing through
// anything it cannot parse.
func formatDate(raw string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02", "January 2, 2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return raw
}
