package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dimitrije/places-api/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// SessionService keeps login state server-side, keyed by a random session
// id. The cookie handed to the client carries the id wrapped in a signed
// token, so a forged cookie never reaches the session table.
type SessionService struct {
	secret    []byte
	lifetime  time.Duration
	adminUser string
	adminPass string
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]models.Session
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func NewSessionService(secret string, lifetime time.Duration, adminUser, adminPass string) *SessionService {
	return &SessionService{
		secret:    []byte(secret),
		lifetime:  lifetime,
		adminUser: adminUser,
		adminPass: adminPass,
		now:       time.Now,
		sessions:  make(map[string]models.Session),
	}
}

// Login checks the credentials against the configured admin identity and,
// on success, creates a session and returns its cookie token. Both
// comparisons are constant time to avoid timing leaks.
func (s *SessionService) Login(username, password string) (string, models.Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPass)) == 1
	if !userOK || !passOK {
		return "", models.Session{}, ErrInvalidCredentials
	}

	sess := models.Session{
		ID:            uuid.New().String(),
		User:          username,
		Authenticated: true,
		ExpiresAt:     s.now().Add(s.lifetime),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	token, err := s.sign(sess)
	if err != nil {
		return "", models.Session{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, sess, nil
}

func (s *SessionService) sign(sess models.Session) (string, error) {
	now := s.now()
	claims := sessionClaims{
		SessionID: sess.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "places-api",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate resolves a cookie token back to its live session.
func (s *SessionService) Validate(token string) (models.Session, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return models.Session{}, ErrInvalidSession
	}

	s.mu.Lock()
	sess, ok := s.sessions[claims.SessionID]
	s.mu.Unlock()

	if !ok || s.now().After(sess.ExpiresAt) {
		return models.Session{}, ErrInvalidSession
	}
	return sess, nil
}

// Logout destroys the session behind the token. Unknown tokens are ignored.
func (s *SessionService) Logout(token string) {
	sess, err := s.Validate(token)
	if err != nil {
		return
	}
	s.mu.Lock()
	delete(s.sessions, sess.ID)
	s.mu.Unlock()
}

// PurgeExpired drops sessions past their expiry and returns how many were
// removed. Run on a recurring schedule.
func (s *SessionService) PurgeExpired() int {
	now := s.now()
	purged := 0

	s.mu.Lock()
	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, id)
			purged++
		}
	}
	s.mu.Unlock()
	return purged
}
