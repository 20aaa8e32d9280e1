package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fletnix/fletnix/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketSession = []byte("session")
	keyToken      = []byte("token")
	keyUser       = []byte("user")
)

// State is a snapshot of the session pushed to subscribers.
type State struct {
	Token         string
	User          *domain.User
	Authenticated bool
}

// Store holds the current token and user, persists them in a bbolt
// database, and pushes state changes to subscribers. It is created once
// at startup and lives for the process lifetime.
//
// Invariant: token and user are written together and cleared together,
// never independently, so a token without a user (or the reverse) cannot
// be observed across restarts.
type Store struct {
	db     *bolt.DB
	logger *slog.Logger

	mu     sync.RWMutex
	token  string
	user   *domain.User
	subs   map[int]chan State
	nextID int
}

// Open opens (or creates) the session database at path and restores any
// stored session.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{
		db:     db,
		logger: logger,
		subs:   make(map[int]chan State),
	}
	s.restore()
	return s, nil
}

// restore loads the stored token and user. A missing pair leaves the
// store unauthenticated; a token with an unparsable user record clears
// both entries. Neither case is surfaced to the caller.
func (s *Store) restore() {
	var tokenData, userData []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if v := b.Get(keyToken); v != nil {
			tokenData = append([]byte(nil), v...)
		}
		if v := b.Get(keyUser); v != nil {
			userData = append([]byte(nil), v...)
		}
		return nil
	})

	if tokenData == nil || userData == nil {
		return
	}

	var user domain.User
	if err := json.Unmarshal(userData, &user); err != nil {
		s.logger.Warn("stored user record is malformed, clearing session", "error", err)
		if err := s.Clear(); err != nil {
			s.logger.Error("failed to clear malformed session", "error", err)
		}
		return
	}

	s.mu.Lock()
	s.token = string(tokenData)
	s.user = &user
	s.mu.Unlock()
}

// Set persists the token and user in one transaction and transitions to
// authenticated.
func (s *Store) Set(token string, user domain.User) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if err := b.Put(keyToken, []byte(token)); err != nil {
			return err
		}
		return b.Put(keyUser, userData)
	})
	if err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()

	s.publish()
	return nil
}

// SetUser replaces only the cached user, leaving the token untouched.
// Used after a profile fetch.
func (s *Store) SetUser(user domain.User) {
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	s.publish()
}

// Clear removes both persisted values and transitions to
// unauthenticated.
func (s *Store) Clear() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if err := b.Delete(keyToken); err != nil {
			return err
		}
		return b.Delete(keyUser)
	})
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	s.publish()
	return nil
}

// Token returns the current token, or empty when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the cached user, or nil when unauthenticated.
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated reports whether a token is present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// state must be called with at least a read lock held.
func (s *Store) state() State {
	return State{
		Token:         s.token,
		User:          s.user,
		Authenticated: s.token != "",
	}
}

// Subscribe registers for session state changes. The returned channel
// receives the current state immediately, then every subsequent change.
// The teardown func must be called when the subscriber goes away.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	ch := make(chan State, 4)
	s.subs[id] = ch
	ch <- s.state()
	s.mu.Unlock()

	teardown := func() {
		s.mu.Lock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
		s.mu.Unlock()
	}
	return ch, teardown
}

// publish pushes the current state to all subscribers, dropping the
// update for any subscriber whose buffer is full.
func (s *Store) publish() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state()
	for _, ch := range s.subs {
		select {
		case ch <- st:
		default:
		}
	}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
