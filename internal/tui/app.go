package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fletnix/fletnix/internal/domain"
	"github.com/fletnix/fletnix/internal/route"
	"github.com/fletnix/fletnix/internal/service"
	"github.com/fletnix/fletnix/internal/session"
)

// Model is the root Bubble Tea model. It owns the current route and the
// history stack, applies the guard on every navigation, and dispatches
// messages to the persistent views.
type Model struct {
	authSvc    *service.AuthService
	catalogSvc *service.CatalogService
	sessions   *session.Store
	logger     *slog.Logger
	keys       KeyMap

	route   route.Route
	history []route.Route

	auth   authView
	home   homeView
	detail detailView

	sessionCh   <-chan session.State
	sessionStop func()

	authenticated bool
	width, height int
	quitting      bool

	initialCmd tea.Cmd
}

// NewModel builds the root model and resolves the initial route through
// the guard, so an unauthenticated start lands on the auth view with the
// listing as the return target.
func NewModel(authSvc *service.AuthService, catalogSvc *service.CatalogService, sessions *session.Store, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	keys := DefaultKeyMap()

	m := Model{
		authSvc:    authSvc,
		catalogSvc: catalogSvc,
		sessions:   sessions,
		logger:     logger,
		keys:       keys,
		auth:       newAuthView(authSvc, keys),
		home:       newHomeView(catalogSvc, keys),
		detail:     newDetailView(catalogSvc, keys),
	}

	ch, stop := sessions.Subscribe()
	m.sessionCh = ch
	m.sessionStop = stop
	m.authenticated = sessions.Authenticated()
	m.home.user = sessions.User()

	m.initialCmd = m.navigate(route.Home(domain.DefaultQuery()))
	return m
}

// Init starts the session subscription listener and the initial
// navigation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initialCmd, ListenSessionCmd(m.sessionCh))
}

// navigate applies the guard and mounts the target view.
func (m *Model) navigate(r route.Route) tea.Cmd {
	if decision := route.Check(r, m.sessions.Authenticated()); !decision.Allowed {
		m.logger.Debug("navigation denied", "target", r.String())
		r = decision.Redirect
	}

	m.history = append(m.history, r)
	m.route = r
	m.logger.Debug("navigate", "route", r.String())

	switch r.Name {
	case route.NameAuth:
		return m.auth.mount(r.ReturnTo)
	case route.NameDetail:
		return m.detail.mount(r.ShowID)
	default:
		return m.home.mount(r.Query)
	}
}

// navigateBack pops the history stack, re-guarding the previous route.
func (m *Model) navigateBack() tea.Cmd {
	if len(m.history) < 2 {
		return nil
	}
	m.history = m.history[:len(m.history)-1]
	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	return m.navigate(prev)
}

// quit tears down the session subscription before stopping the program.
func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.sessionStop()
	return tea.Quit
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.home.width, m.home.height = msg.Width, msg.Height
		m.detail.width, m.detail.height = msg.Width, msg.Height
		m.auth.width, m.auth.height = msg.Width, msg.Height
		return m, nil

	case SessionChangedMsg:
		if !msg.OK {
			return m, nil // subscription torn down
		}
		wasAuthenticated := m.authenticated
		m.authenticated = msg.State.Authenticated
		m.home.user = msg.State.User

		var cmd tea.Cmd
		if wasAuthenticated && !m.authenticated && m.route.Name != route.NameAuth {
			// Session went away under a protected view; the guard sends
			// us to the auth view with the current route as the return
			// target.
			cmd = m.navigate(route.Auth(m.route.String()))
		}
		return m, tea.Batch(cmd, ListenSessionCmd(m.sessionCh))

	case NavigateMsg:
		return m, m.navigate(msg.Route)

	case NavigateBackMsg:
		return m, m.navigateBack()

	case AuthResultMsg:
		if msg.Err != nil {
			m.auth.setError(msg.Err.Error())
			return m, nil
		}
		// Resume the originally requested route, not the default
		// landing view.
		target := route.Home(domain.DefaultQuery())
		if m.auth.returnTo != "" {
			target = route.Parse(m.auth.returnTo)
		}
		return m, m.navigate(target)

	case LoggedOutMsg:
		if msg.Err != nil {
			m.logger.Error("logout failed", "error", msg.Err)
		}
		return m, m.navigate(route.Auth(""))

	case ProfileRefreshedMsg:
		if msg.Err != nil {
			m.logger.Warn("profile refresh failed", "error", msg.Err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ShowsLoadedMsg, ShowsFailedMsg, FilterOptionsLoadedMsg, StatsLoadedMsg, SearchDebounceMsg:
		var cmd tea.Cmd
		m.home, cmd = m.home.update(msg)
		return m, cmd

	case ShowLoadedMsg, ShowFailedMsg:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.update(msg)
		return m, cmd

	case spinner.TickMsg:
		// Each view's spinner matches ticks by ID, so the wrong view's
		// update is a no-op.
		var homeCmd, detailCmd tea.Cmd
		m.home, homeCmd = m.home.update(msg)
		m.detail, detailCmd = m.detail.update(msg)
		return m, tea.Batch(homeCmd, detailCmd)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, m.quit()
	}

	switch m.route.Name {
	case route.NameAuth:
		var cmd tea.Cmd
		m.auth, cmd = m.auth.update(msg)
		return m, cmd

	case route.NameDetail:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, m.quit()
		case key.Matches(msg, m.keys.Logout):
			return m, LogoutCmd(m.authSvc)
		case key.Matches(msg, m.keys.Profile):
			return m, RefreshProfileCmd(m.authSvc)
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.update(msg)
		return m, cmd

	default:
		if !m.home.capturingInput() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, m.quit()
			case key.Matches(msg, m.keys.Logout):
				return m, LogoutCmd(m.authSvc)
			case key.Matches(msg, m.keys.Profile):
				return m, RefreshProfileCmd(m.authSvc)
			}
		}
		var cmd tea.Cmd
		m.home, cmd = m.home.update(msg)
		return m, cmd
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.route.Name {
	case route.NameAuth:
		return m.auth.view()
	case route.NameDetail:
		return m.detail.view()
	default:
		return m.home.view()
	}
}
