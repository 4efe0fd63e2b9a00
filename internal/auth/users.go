package auth

import (
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"busbooking/internal/domain"
)

// User is a registered payer identity.
type User struct {
	Email        string
	Name         string
	PasswordHash []byte
}

// UserStore keeps registered users in memory for the session, the way
// the system this replaces kept its mock session user.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewUserStore() *UserStore {
	return &UserStore{users: map[string]User{}}
}

func (s *UserStore) Register(email, name, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return User{}, domain.ValidationError{Field: "email", Msg: "valid email is required"}
	}
	if len(password) < 6 {
		return User{}, domain.ValidationError{Field: "password", Msg: "minimum 6 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, domain.InternalError{Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[email]; exists {
		return User{}, domain.ConflictError{Resource: "user", Msg: "email already registered"}
	}
	user := User{Email: email, Name: strings.TrimSpace(name), PasswordHash: hash}
	s.users[email] = user
	return user, nil
}

func (s *UserStore) Authenticate(email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.RLock()
	user, ok := s.users[email]
	s.mu.RUnlock()
	if !ok {
		return User{}, domain.NotFoundError{Resource: "user"}
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return User{}, domain.ValidationError{Field: "password", Msg: "wrong password"}
	}
	return user, nil
}
