// Package auth handles password hashing and JWT session tokens.
// Plaintext passwords never leave this package; the store only sees
// bcrypt hashes.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/praxislabs/praxis/internal/store"
)

// ErrInvalidCredentials covers both unknown usernames and wrong
// passwords so callers can't probe which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken indicates a missing, malformed, expired or tampered
// session token.
var ErrInvalidToken = errors.New("invalid token")

// DefaultTokenTTL is how long issued tokens stay valid.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the JWT payload for a praxis session.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager registers users, verifies logins and issues session tokens.
type Manager struct {
	users  store.UserRepo
	secret []byte
	ttl    time.Duration
}

// New creates a Manager. A zero ttl means DefaultTokenTTL.
func New(users store.UserRepo, secret []byte, ttl time.Duration) *Manager {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &Manager{users: users, secret: secret, ttl: ttl}
}

// Register creates an account with a bcrypt-hashed password. Returns
// store.ErrAlreadyExists when the username or email is taken.
func (m *Manager) Register(ctx context.Context, username, password, email string) (*store.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrInvalidCredentials)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return m.users.Create(ctx, username, string(hash), email)
}

// Login verifies the password, stamps last_login and issues a token.
func (m *Manager) Login(ctx context.Context, username, password string) (string, *store.User, error) {
	creds, err := m.users.CredentialsByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := m.users.TouchLastLogin(ctx, creds.UserID); err != nil {
		return "", nil, err
	}
	user, err := m.users.ByID(ctx, creds.UserID)
	if err != nil {
		return "", nil, err
	}

	token, err := m.Issue(user.ID, user.Username)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Issue signs a session token for the given user.
func (m *Manager) Issue(userID, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
