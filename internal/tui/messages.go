package tui

import (
	"github.com/fletnix/fletnix/internal/domain"
	"github.com/fletnix/fletnix/internal/route"
	"github.com/fletnix/fletnix/internal/session"
)

// Message types for the TUI

// NavigateMsg requests navigation to a route
type NavigateMsg struct {
	Route route.Route
}

// NavigateBackMsg requests navigation back one route
type NavigateBackMsg struct{}

// ShowsLoadedMsg carries one page of listing results. Seq identifies the
// request generation; results from a superseded generation are dropped.
type ShowsLoadedMsg struct {
	Seq  int
	Page domain.ShowPage
}

// ShowsFailedMsg signals that a listing request failed
type ShowsFailedMsg struct {
	Seq int
	Err error
}

// ShowLoadedMsg carries a single show for the detail view
type ShowLoadedMsg struct {
	Show domain.Show
}

// ShowFailedMsg signals that a detail fetch failed
type ShowFailedMsg struct {
	Err error
}

// FilterOptionsLoadedMsg carries the filter control vocabularies
type FilterOptionsLoadedMsg struct {
	Options domain.FilterOptions
}

// StatsLoadedMsg carries the catalog overview counts
type StatsLoadedMsg struct {
	Stats domain.ShowStats
}

// SearchDebounceMsg fires when the search input has been quiet long
// enough. Seq identifies the keystroke burst; a stale timer is ignored.
type SearchDebounceMsg struct {
	Seq int
}

// AuthResultMsg signals the outcome of a login or register attempt
type AuthResultMsg struct {
	Err error
}

// ProfileRefreshedMsg signals a completed profile fetch
type ProfileRefreshedMsg struct {
	User domain.User
	Err  error
}

// LoggedOutMsg signals that the session was cleared
type LoggedOutMsg struct {
	Err error
}

// SessionChangedMsg carries a session state update from the store
type SessionChangedMsg struct {
	State session.State
	OK    bool // false when the subscription channel closed
}
