package identity

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrAlreadyExists is returned when an email is already registered.
	ErrAlreadyExists = errors.New("user already exists")
	// ErrNotFound is returned when no identity matches an email.
	ErrNotFound = errors.New("user not found")
)

// Identity is a registered account. Immutable after creation.
type Identity struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}

// Store keeps identities in process memory, keyed by email. Contents are
// lost on restart; that is a documented limitation of this service, not a
// bug. Ids follow insertion order and are never reused.
type Store struct {
	mu      sync.Mutex
	byEmail map[string]*Identity
	seq     int
}

// NewStore constructs an empty in-memory credential store.
func NewStore() *Store {
	return &Store{byEmail: make(map[string]*Identity)}
}

// Put inserts a new identity under email, assigning its id. The uniqueness
// check and the insert happen under one lock so concurrent registrations
// for the same email resolve to exactly one winner.
func (s *Store) Put(email string, ident Identity) (*Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[email]; ok {
		return nil, ErrAlreadyExists
	}

	s.seq++
	ident.ID = fmt.Sprintf("user_%d", s.seq)
	ident.Email = email
	stored := ident
	s.byEmail[email] = &stored
	return &stored, nil
}

// Get returns the identity registered under email.
func (s *Store) Get(email string) (*Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ident, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *ident
	return &copied, nil
}

// Len reports how many identities are registered.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byEmail)
}
