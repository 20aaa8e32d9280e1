package tui

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fletnix/fletnix/internal/domain"
	"github.com/fletnix/fletnix/internal/route"
	"github.com/fletnix/fletnix/internal/session"
)

func testModel(t *testing.T) (Model, *session.Store) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := session.Open(filepath.Join(t.TempDir(), "session.db"), logger)
	if err != nil {
		t.Fatalf("session.Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewModel(nil, nil, store, logger), store
}

func applyMsg(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestLoginResumesRequestedRoute(t *testing.T) {
	m, store := testModel(t)
	if m.route.Name != route.NameAuth {
		t.Fatalf("unauthenticated start should land on auth, got %+v", m.route)
	}

	// Ask for a filtered listing page while signed out.
	target := route.Home(domain.DefaultQuery().WithSearch("dark").WithPage(2))
	m = applyMsg(t, m, NavigateMsg{Route: target})
	if m.route.Name != route.NameAuth {
		t.Fatalf("guard should deny, got %+v", m.route)
	}
	if m.auth.returnTo != target.String() {
		t.Fatalf("returnTo = %q, want %q", m.auth.returnTo, target.String())
	}

	// A successful login resumes the denied route, not the landing page.
	if err := store.Set("tok", domain.User{ID: "u1", Email: "a@b.c"}); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	m = applyMsg(t, m, AuthResultMsg{Err: nil})
	if m.route != target {
		t.Errorf("route after login = %+v, want %+v", m.route, target)
	}
}

func TestLoginWithoutTargetLandsOnDefaultListing(t *testing.T) {
	m, store := testModel(t)
	if err := store.Set("tok", domain.User{ID: "u1", Email: "a@b.c"}); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	// Visiting the auth view directly carries no return target.
	m = applyMsg(t, m, NavigateMsg{Route: route.Auth("")})
	if m.route.Name != route.NameAuth || m.auth.returnTo != "" {
		t.Fatalf("route = %+v, returnTo = %q", m.route, m.auth.returnTo)
	}

	m = applyMsg(t, m, AuthResultMsg{Err: nil})
	if m.route != route.Home(domain.DefaultQuery()) {
		t.Errorf("route after login = %+v, want default listing", m.route)
	}
}

func TestFailedLoginStaysOnAuthView(t *testing.T) {
	m, _ := testModel(t)

	m = applyMsg(t, m, AuthResultMsg{Err: errors.New("Invalid email or password")})
	if m.route.Name != route.NameAuth {
		t.Errorf("route = %+v, want auth", m.route)
	}
	if m.auth.errMsg != "Invalid email or password" {
		t.Errorf("errMsg = %q", m.auth.errMsg)
	}
	if m.auth.busy {
		t.Error("busy flag should clear on failure")
	}
}
