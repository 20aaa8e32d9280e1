package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fletnix/fletnix/internal/domain"
	"github.com/fletnix/fletnix/internal/service"
	"github.com/fletnix/fletnix/internal/session"
)

// debounceInterval is how long the search input must be quiet before a
// navigation is emitted.
const debounceInterval = 300 * time.Millisecond

const requestTimeout = 30 * time.Second

// Command factories for async operations

// ListShowsCmd fetches one listing page. The seq travels with the result
// so the view can discard responses from superseded queries.
func ListShowsCmd(svc *service.CatalogService, q domain.Query, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		page, err := svc.ListShows(ctx, q)
		if err != nil {
			return ShowsFailedMsg{Seq: seq, Err: err}
		}
		return ShowsLoadedMsg{Seq: seq, Page: page}
	}
}

// GetShowCmd fetches a single show by identifier
func GetShowCmd(svc *service.CatalogService, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		show, err := svc.GetShow(ctx, id)
		if err != nil {
			return ShowFailedMsg{Err: err}
		}
		return ShowLoadedMsg{Show: show}
	}
}

// LoadFilterOptionsCmd fetches the filter vocabularies. A failure is
// logged by the service and silently dropped here; the filter controls
// simply stay empty.
func LoadFilterOptionsCmd(svc *service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		opts, err := svc.GetFilterOptions(ctx)
		if err != nil {
			return nil
		}
		return FilterOptionsLoadedMsg{Options: opts}
	}
}

// LoadStatsCmd fetches the catalog overview counts
func LoadStatsCmd(svc *service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		stats, err := svc.GetStats(ctx)
		if err != nil {
			return nil
		}
		return StatsLoadedMsg{Stats: stats}
	}
}

// DebounceSearchCmd schedules a debounce check for a keystroke burst
func DebounceSearchCmd(seq int) tea.Cmd {
	return tea.Tick(debounceInterval, func(time.Time) tea.Msg {
		return SearchDebounceMsg{Seq: seq}
	})
}

// LoginCmd performs a login attempt
func LoginCmd(svc *service.AuthService, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return AuthResultMsg{Err: svc.Login(ctx, email, password)}
	}
}

// RegisterCmd performs a registration attempt
func RegisterCmd(svc *service.AuthService, email, password string, age int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return AuthResultMsg{Err: svc.Register(ctx, email, password, age)}
	}
}

// RefreshProfileCmd fetches the current user record
func RefreshProfileCmd(svc *service.AuthService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		user, err := svc.RefreshProfile(ctx)
		return ProfileRefreshedMsg{User: user, Err: err}
	}
}

// LogoutCmd clears the session
func LogoutCmd(svc *service.AuthService) tea.Cmd {
	return func() tea.Msg {
		return LoggedOutMsg{Err: svc.Logout()}
	}
}

// ListenSessionCmd waits for the next session state change. The app
// re-issues it after each message so the subscription stays live for the
// program's lifetime.
func ListenSessionCmd(ch <-chan session.State) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-ch
		return SessionChangedMsg{State: state, OK: ok}
	}
}
