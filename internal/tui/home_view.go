package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fletnix/fletnix/internal/domain"
	"github.com/fletnix/fletnix/internal/route"
	"github.com/fletnix/fletnix/internal/service"
	"github.com/fletnix/fletnix/internal/tui/components"
	"github.com/fletnix/fletnix/internal/tui/styles"
)

// listState is the listing view's lifecycle.
type listState int

const (
	stateIdle listState = iota
	stateLoading
	stateLoaded
	stateFailed
)

// anyOption is the picker entry that clears a filter.
const anyOption = "Any"

// pickerKind tells the view which filter the open picker is for.
type pickerKind int

const (
	pickerNone pickerKind = iota
	pickerType
	pickerRating
	pickerSort
)

// sortOption maps a picker label to a sort field and direction.
type sortOption struct {
	label     string
	sortBy    string
	sortOrder string
}

var sortOptions = []sortOption{
	{"Title (A-Z)", "title", "asc"},
	{"Title (Z-A)", "title", "desc"},
	{"Release Year (newest)", "release_year", "desc"},
	{"Release Year (oldest)", "release_year", "asc"},
	{"Date Added (newest)", "date_added", "desc"},
	{"Date Added (oldest)", "date_added", "asc"},
	{"Rating", "rating", "asc"},
	{"Type", "type", "asc"},
}

// homeView is the listing controller. The route query is the single
// source of truth: every user interaction becomes a navigation, and the
// resulting mount re-enters the load cycle.
type homeView struct {
	catalog *service.CatalogService
	keys    KeyMap

	query      domain.Query
	state      listState
	shows      []domain.Show
	pagination domain.Pagination
	errMsg     string
	cursor     int

	// reqSeq tags the in-flight listing request; responses carrying an
	// older seq are discarded so a stale reply can never overwrite a
	// newer query's state.
	reqSeq int

	spinner spinner.Model

	searchInput textinput.Model
	searching   bool
	searchSeq   int
	lastEmitted string

	filterOptions *domain.FilterOptions
	stats         *domain.ShowStats
	user          *domain.User

	picker     components.Picker
	pickerFor  pickerKind
	sortLabels []string

	width  int
	height int
}

func newHomeView(catalog *service.CatalogService, keys KeyMap) homeView {
	search := textinput.New()
	search.Placeholder = "Search titles..."
	search.CharLimit = 100
	search.Width = 36
	search.Prompt = "/ "
	search.PromptStyle = styles.AccentStyle

	labels := make([]string, len(sortOptions))
	for i, opt := range sortOptions {
		labels[i] = opt.label
	}

	return homeView{
		catalog:     catalog,
		keys:        keys,
		query:       domain.DefaultQuery(),
		spinner:     newSpinner(),
		searchInput: search,
		picker:      components.NewPicker(),
		sortLabels:  labels,
	}
}

// newSpinner builds the loading indicator shared by the views.
func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Spinner{Frames: styles.SpinnerFrames, FPS: time.Second / 10}
	s.Style = styles.AccentStyle
	return s
}

// mount enters the load cycle for a route query. Prior results stay on
// screen while the new page loads.
func (v *homeView) mount(q domain.Query) tea.Cmd {
	v.query = q
	v.state = stateLoading
	v.errMsg = ""
	v.reqSeq++
	v.searchInput.SetValue(q.Search)
	v.lastEmitted = q.Search
	v.searching = false
	v.searchInput.Blur()

	cmds := []tea.Cmd{ListShowsCmd(v.catalog, q, v.reqSeq), v.spinner.Tick}
	if v.filterOptions == nil {
		cmds = append(cmds, LoadFilterOptionsCmd(v.catalog))
	}
	if v.stats == nil {
		cmds = append(cmds, LoadStatsCmd(v.catalog))
	}
	return tea.Batch(cmds...)
}

// capturingInput reports whether keystrokes belong to a text control.
func (v homeView) capturingInput() bool {
	return v.searching || v.picker.IsVisible()
}

func (v homeView) update(msg tea.Msg) (homeView, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowsLoadedMsg:
		if msg.Seq != v.reqSeq {
			return v, nil // superseded by a newer query
		}
		v.state = stateLoaded
		v.shows = msg.Page.Shows
		v.pagination = msg.Page.Pagination
		v.errMsg = ""
		if v.cursor >= len(v.shows) {
			v.cursor = 0
		}
		return v, nil

	case ShowsFailedMsg:
		if msg.Seq != v.reqSeq {
			return v, nil
		}
		// Stale content stays on screen next to the error banner.
		v.state = stateFailed
		v.errMsg = msg.Err.Error()
		return v, nil

	case FilterOptionsLoadedMsg:
		opts := msg.Options
		v.filterOptions = &opts
		return v, nil

	case StatsLoadedMsg:
		stats := msg.Stats
		v.stats = &stats
		return v, nil

	case spinner.TickMsg:
		// The spinner only animates while a page is in flight.
		if v.state != stateLoading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case SearchDebounceMsg:
		// Only the newest burst's timer counts, and only a changed
		// value emits a navigation.
		if msg.Seq != v.searchSeq {
			return v, nil
		}
		value := strings.TrimSpace(v.searchInput.Value())
		if value == v.lastEmitted {
			return v, nil
		}
		v.lastEmitted = value
		return v, navigateTo(route.Home(v.query.WithSearch(value)))

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v homeView) handleKey(msg tea.KeyMsg) (homeView, tea.Cmd) {
	if v.picker.IsVisible() {
		return v.updatePicker(msg)
	}

	if v.searching {
		switch {
		case key.Matches(msg, v.keys.Escape), key.Matches(msg, v.keys.Enter):
			v.searching = false
			v.searchInput.Blur()
			return v, nil
		}
		before := v.searchInput.Value()
		var cmd tea.Cmd
		v.searchInput, cmd = v.searchInput.Update(msg)
		if v.searchInput.Value() != before {
			v.searchSeq++
			return v, tea.Batch(cmd, DebounceSearchCmd(v.searchSeq))
		}
		return v, cmd
	}

	switch {
	case key.Matches(msg, v.keys.Search):
		v.searching = true
		return v, v.searchInput.Focus()

	case key.Matches(msg, v.keys.TypeFilter):
		v.pickerFor = pickerType
		v.picker.Show("Filter by type", withAny(v.typeOptions()))
		return v, nil

	case key.Matches(msg, v.keys.Rating):
		v.pickerFor = pickerRating
		v.picker.Show("Filter by rating", withAny(v.ratingOptions()))
		return v, nil

	case key.Matches(msg, v.keys.Sort):
		v.pickerFor = pickerSort
		v.picker.Show("Sort by", v.sortLabels)
		return v, nil

	case key.Matches(msg, v.keys.NextPage):
		if v.pagination.HasNextPage {
			return v, navigateTo(route.Home(v.query.WithPage(v.query.Page + 1)))
		}
		return v, nil

	case key.Matches(msg, v.keys.PrevPage):
		if v.pagination.HasPrevPage {
			return v, navigateTo(route.Home(v.query.WithPage(v.query.Page - 1)))
		}
		return v, nil

	case key.Matches(msg, v.keys.ClearAll):
		return v, navigateTo(route.Home(domain.DefaultQuery()))

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.shows)-1 {
			v.cursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.cursor < len(v.shows) {
			return v, navigateTo(route.Detail(v.shows[v.cursor].ID))
		}
		return v, nil
	}

	return v, nil
}

func (v homeView) updatePicker(msg tea.Msg) (homeView, tea.Cmd) {
	var cmd tea.Cmd
	var outcome components.PickerOutcome
	v.picker, cmd, outcome = v.picker.Update(msg)
	if outcome != components.PickerSelected {
		if outcome == components.PickerCancelled {
			v.pickerFor = pickerNone
		}
		return v, cmd
	}

	choice := v.picker.Selected()
	kind := v.pickerFor
	v.pickerFor = pickerNone

	switch kind {
	case pickerType:
		if choice == anyOption {
			choice = ""
		}
		return v, navigateTo(route.Home(v.query.WithType(choice)))
	case pickerRating:
		if choice == anyOption {
			choice = ""
		}
		return v, navigateTo(route.Home(v.query.WithRating(choice)))
	case pickerSort:
		for _, opt := range sortOptions {
			if opt.label == choice {
				return v, navigateTo(route.Home(v.query.WithSort(opt.sortBy, opt.sortOrder)))
			}
		}
	}
	return v, cmd
}

func (v homeView) typeOptions() []string {
	if v.filterOptions != nil && len(v.filterOptions.Types) > 0 {
		return v.filterOptions.Types
	}
	return []string{domain.ShowTypeMovie, domain.ShowTypeTVShow}
}

func (v homeView) ratingOptions() []string {
	if v.filterOptions != nil {
		return v.filterOptions.Ratings
	}
	return nil
}

func withAny(options []string) []string {
	return append([]string{anyOption}, options...)
}

func (v homeView) view() string {
	var b strings.Builder

	b.WriteString(v.renderHeader())
	b.WriteString("\n")
	b.WriteString(v.searchInput.View())
	b.WriteString("\n")
	b.WriteString(v.renderFilterLine())
	b.WriteString("\n\n")

	if v.errMsg != "" {
		b.WriteString(styles.ErrorBannerStyle.Render(v.errMsg))
		b.WriteString("\n\n")
	}

	switch {
	case v.state == stateLoading && len(v.shows) == 0:
		b.WriteString(v.spinner.View())
		b.WriteString(styles.DimStyle.Render(" Loading shows..."))
	case len(v.shows) == 0:
		b.WriteString(styles.DimStyle.Render("No shows match the current filters."))
	default:
		b.WriteString(v.renderShows())
	}

	b.WriteString("\n")
	b.WriteString(v.renderPagination())
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("/: search  t: type  r: rating  s: sort  n/p: page  c: clear  enter: open  L: logout  q: quit"))

	content := styles.ViewStyle.Render(b.String())
	if v.picker.IsVisible() && v.width > 0 && v.height > 0 {
		return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, v.picker.View())
	}
	return content
}

func (v homeView) renderHeader() string {
	left := styles.HeaderStyle.Render("FLETNIX")
	parts := []string{left}
	if v.stats != nil {
		parts = append(parts, styles.DimStyle.Render(
			fmt.Sprintf("%d titles (%d movies, %d shows)", v.stats.TotalShows, v.stats.MovieCount, v.stats.TVShowCount)))
	}
	if v.user != nil {
		parts = append(parts, styles.SubtitleStyle.Render(v.user.Email))
	}
	return strings.Join(parts, "  ")
}

func (v homeView) renderFilterLine() string {
	var parts []string
	if v.query.Type != "" {
		parts = append(parts, "type: "+v.query.Type)
	}
	if v.query.Rating != "" {
		parts = append(parts, "rating: "+v.query.Rating)
	}
	if v.query.SortBy != domain.DefaultSortBy || v.query.SortOrder != domain.DefaultSortOrder {
		parts = append(parts, fmt.Sprintf("sort: %s %s", v.query.SortBy, v.query.SortOrder))
	}
	if len(parts) == 0 {
		return styles.DimStyle.Render("no filters")
	}
	return styles.AccentStyle.Render(strings.Join(parts, "  •  "))
}

func (v homeView) renderShows() string {
	var b strings.Builder
	for i, show := range v.shows {
		line := fmt.Sprintf("%-7s %4d  %-6s %s", show.Type, show.ReleaseYear, show.Rating, show.Title)
		if i == v.cursor {
			b.WriteString(styles.SelectedStyle.Render(line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (v homeView) renderPagination() string {
	if v.pagination.TotalPages <= 1 {
		return ""
	}
	var parts []string
	for _, page := range domain.PageNumbers(v.pagination.CurrentPage, v.pagination.TotalPages) {
		label := fmt.Sprintf("%d", page)
		if page == v.pagination.CurrentPage {
			parts = append(parts, styles.SelectedStyle.Render(label))
		} else {
			parts = append(parts, styles.DimStyle.Render(label))
		}
	}
	summary := fmt.Sprintf("page %d of %d  (%d titles)", v.pagination.CurrentPage, v.pagination.TotalPages, v.pagination.TotalCount)
	return strings.Join(parts, " ") + "  " + styles.DimStyle.Render(summary)
}

// navigateTo emits a navigation request to the app model.
func navigateTo(r route.Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: r} }
}

// navigateBack emits a back-navigation request.
func navigateBack() tea.Cmd {
	return func() tea.Msg { return NavigateBackMsg{} }
}
