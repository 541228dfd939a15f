// Package auth is the identity store: registered accounts, the single
// active session, and the bounded audit log of auth events.
package auth

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/hearhut/storefront-api/models"
	"github.com/hearhut/storefront-api/store"
)

// Storage keys.
const (
	sessionKey = "auth_user"
	usersKey   = "users"
	eventsKey  = "auth_events"
)

// maxAuthEvents bounds the audit log; oldest entries are evicted first.
const maxAuthEvents = 100

var (
	ErrAccountExists     = errors.New("account already exists with this email")
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// ValidationError reports a malformed or missing input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var gmailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@gmail\.com$`)

const passwordSymbols = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"

// Store manages identities and the active session on top of the KV store.
type Store struct {
	kv store.KV
}

func NewStore(kv store.KV) *Store {
	return &Store{kv: kv}
}

// Session returns the signed-in identity, or nil when browsing as guest.
// Storage failures degrade to guest.
func (s *Store) Session() *models.Session {
	var sess models.Session
	if err := s.kv.Get(sessionKey, &sess); err != nil {
		return nil
	}
	return &sess
}

// SignUp registers a new identity and signs it in.
func (s *Store) SignUp(name, email, password string) (*models.Session, error) {
	if name == "" || email == "" || password == "" {
		return nil, &ValidationError{Field: "form", Message: "All fields required"}
	}
	email = strings.TrimSpace(email)
	if !isGmail(email) {
		return nil, &ValidationError{Field: "email", Message: "Email must be a valid @gmail.com address"}
	}
	if !validPassword(password) {
		return nil, &ValidationError{Field: "password", Message: "Password must have 2 uppercase letters, 1 special character, and no spaces"}
	}

	users := s.loadUsers()
	for _, u := range users {
		if u.Email == email {
			return nil, ErrAccountExists
		}
	}
	users = append(users, models.Identity{Email: email, Name: name, Password: password})
	if err := s.kv.Put(usersKey, users); err != nil {
		return nil, err
	}

	sess := models.Session{Email: email, Name: name}
	if err := s.kv.Put(sessionKey, sess); err != nil {
		return nil, err
	}
	s.pushEvent("signUp", email)
	return &sess, nil
}

// SignIn checks credentials against the stored identity and establishes the
// session. Passwords are compared in plaintext, same as the stored form.
func (s *Store) SignIn(email, password string) (*models.Session, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Field: "form", Message: "Email and password required"}
	}
	email = strings.TrimSpace(email)
	if !isGmail(email) {
		return nil, &ValidationError{Field: "email", Message: "Email must be a valid @gmail.com address"}
	}
	if !validPassword(password) {
		return nil, &ValidationError{Field: "password", Message: "Password must have 2 uppercase letters, 1 special character, and no spaces"}
	}

	var found *models.Identity
	for _, u := range s.loadUsers() {
		if u.Email == email {
			found = &u
			break
		}
	}
	if found == nil {
		return nil, ErrUserNotFound
	}
	if found.Password != password {
		return nil, ErrIncorrectPassword
	}

	sess := models.Session{Email: found.Email, Name: found.Name}
	if err := s.kv.Put(sessionKey, sess); err != nil {
		return nil, err
	}
	s.pushEvent("signIn", email)
	return &sess, nil
}

// SignOut clears the session. Calling it with no session is a no-op.
func (s *Store) SignOut() {
	sess := s.Session()
	_ = s.kv.Delete(sessionKey)
	if sess != nil {
		s.pushEvent("signOut", sess.Email)
	}
}

// Events returns the audit log, oldest first.
func (s *Store) Events() []models.AuthEvent {
	var events []models.AuthEvent
	if err := s.kv.Get(eventsKey, &events); err != nil {
		return nil
	}
	return events
}

// Find looks up a registered identity by email.
func (s *Store) Find(email string) (models.Identity, bool) {
	for _, u := range s.loadUsers() {
		if u.Email == email {
			return u, true
		}
	}
	return models.Identity{}, false
}

func (s *Store) loadUsers() []models.Identity {
	var users []models.Identity
	if err := s.kv.Get(usersKey, &users); err != nil {
		return nil
	}
	return users
}

// pushEvent appends to the audit ring. Best-effort: audit must never block
// an auth operation.
func (s *Store) pushEvent(typ, email string) {
	var events []models.AuthEvent
	_ = s.kv.Get(eventsKey, &events)
	events = append(events, models.AuthEvent{Type: typ, Email: email, Time: time.Now().UTC()})
	for len(events) > maxAuthEvents {
		events = events[1:]
	}
	_ = s.kv.Put(eventsKey, events)
}

func isGmail(email string) bool {
	return gmailRe.MatchString(strings.ToLower(strings.TrimSpace(email)))
}

func validPassword(pwd string) bool {
	if pwd == "" {
		return false
	}
	upper := 0
	special := false
	for _, r := range pwd {
		if unicode.IsSpace(r) {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			upper++
		}
		if strings.ContainsRune(passwordSymbols, r) {
			special = true
		}
	}
	return upper >= 2 && special
}
