package session

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/fletnix/fletnix/internal/domain"
	bolt "go.etcd.io/bbolt"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path, testLogger())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	user := domain.User{ID: "u1", Email: "viewer@example.com", Age: 30, IsAdult: true}

	s := openStore(t, path)
	if s.Authenticated() {
		t.Fatal("fresh store should be unauthenticated")
	}
	if err := s.Set("tok-abc", user); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	// Reopen and confirm the pair survived.
	s2 := openStore(t, path)
	if !s2.Authenticated() {
		t.Fatal("restored store should be authenticated")
	}
	if got := s2.Token(); got != "tok-abc" {
		t.Errorf("Token() = %q, want %q", got, "tok-abc")
	}
	if got := s2.User(); got == nil || got.Email != user.Email {
		t.Errorf("User() = %+v, want %+v", got, user)
	}
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	s := openStore(t, path)

	if err := s.Set("tok", domain.User{ID: "u1", Email: "a@b.c"}); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if s.Authenticated() || s.Token() != "" || s.User() != nil {
		t.Error("cleared store should hold nothing")
	}
	s.Close()

	s2 := openStore(t, path)
	if s2.Authenticated() {
		t.Error("cleared session should not come back after restart")
	}
}

func TestRestoreClearsMalformedUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	s := openStore(t, path)

	// Write a token next to a user record that will not decode.
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if err := b.Put(keyToken, []byte("tok")); err != nil {
			return err
		}
		return b.Put(keyUser, []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("seed error: %v", err)
	}

	s.restore()
	if s.Authenticated() {
		t.Error("malformed user should leave the store unauthenticated")
	}

	// Both keys must be gone, not just the user.
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if b.Get(keyToken) != nil {
			t.Error("token should have been cleared with the malformed user")
		}
		if b.Get(keyUser) != nil {
			t.Error("malformed user record should have been cleared")
		}
		return nil
	})
}

func TestSubscribe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	s := openStore(t, path)

	ch, stop := s.Subscribe()

	// The current state arrives immediately.
	select {
	case st := <-ch:
		if st.Authenticated {
			t.Error("initial state should be unauthenticated")
		}
	case <-time.After(time.Second):
		t.Fatal("no initial state pushed")
	}

	if err := s.Set("tok", domain.User{ID: "u1", Email: "a@b.c"}); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	select {
	case st := <-ch:
		if !st.Authenticated || st.Token != "tok" {
			t.Errorf("state after Set = %+v", st)
		}
	case <-time.After(time.Second):
		t.Fatal("no state pushed after Set")
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	select {
	case st := <-ch:
		if st.Authenticated {
			t.Errorf("state after Clear = %+v", st)
		}
	case <-time.After(time.Second):
		t.Fatal("no state pushed after Clear")
	}

	stop()
	if _, ok := <-ch; ok {
		t.Error("channel should be closed after teardown")
	}

	// A publish after teardown must not panic.
	if err := s.Set("tok2", domain.User{ID: "u2", Email: "x@y.z"}); err != nil {
		t.Fatalf("Set() after teardown error: %v", err)
	}
}
