package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/fintrack-server/internal/logger"
	"github.com/fintrack/fintrack-server/internal/model"
)

// defaultCacheCap bounds the number of cached sessions. One entry exists
// per identity that logged in during the process lifetime; without a cap
// sustained new-identity traffic would grow the map forever.
const defaultCacheCap = 4096

type cacheEntry struct {
	token     string
	expiresAt time.Time
}

// TokenService issues bearer tokens and reuses still-valid ones, so
// repeated logins inside a token's validity window return the same
// token instead of minting a new one. The cache is a pure optimization:
// every served entry is re-verified through the token manager first.
type TokenService struct {
	manager model.TokenManager
	ttl     time.Duration
	logger  *logger.Logger

	mu    sync.Mutex
	cache map[uuid.UUID]cacheEntry
	cap   int
}

// NewTokenService creates a TokenService minting tokens valid for ttl.
func NewTokenService(manager model.TokenManager, ttl time.Duration, logger *logger.Logger) *TokenService {
	return &TokenService{
		manager: manager,
		ttl:     ttl,
		logger:  logger,
		cache:   make(map[uuid.UUID]cacheEntry),
		cap:     defaultCacheCap,
	}
}

// GetOrIssue returns the cached token for the user if it still verifies,
// otherwise mints a new one and overwrites the cache entry.
func (s *TokenService) GetOrIssue(userID uuid.UUID, email string) (string, error) {
	s.mu.Lock()
	entry, ok := s.cache[userID]
	s.mu.Unlock()

	if ok {
		claims, err := s.manager.Parse(entry.token)
		if err == nil && claims.UserID == userID {
			return entry.token, nil
		}
		// Expired or tampered entries are discarded, never served.
		s.mu.Lock()
		if cur, ok := s.cache[userID]; ok && cur.token == entry.token {
			delete(s.cache, userID)
		}
		s.mu.Unlock()
	}

	token, err := s.manager.Generate(userID, email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.store(userID, token, time.Now().Add(s.ttl))

	return token, nil
}

// Authenticate resolves the identity encoded in a bearer token.
func (s *TokenService) Authenticate(token string) (model.Identity, error) {
	claims, err := s.manager.Parse(token)
	if err != nil {
		return model.Identity{}, err
	}

	return model.Identity{ID: claims.UserID, Email: claims.Email}, nil
}

func (s *TokenService) store(userID uuid.UUID, token string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.cache[userID]; !exists && len(s.cache) >= s.cap {
		s.sweepLocked(time.Now())
		if len(s.cache) >= s.cap {
			s.evictSoonestLocked()
		}
	}

	s.cache[userID] = cacheEntry{token: token, expiresAt: expiresAt}
}

// sweepLocked drops entries that expired before now. Caller holds mu.
func (s *TokenService) sweepLocked(now time.Time) {
	for id, entry := range s.cache {
		if now.After(entry.expiresAt) {
			delete(s.cache, id)
		}
	}
}

// evictSoonestLocked drops the entry closest to expiry. Caller holds mu.
func (s *TokenService) evictSoonestLocked() {
	var (
		victim uuid.UUID
		found  bool
		min    time.Time
	)
	for id, entry := range s.cache {
		if !found || entry.expiresAt.Before(min) {
			victim, min, found = id, entry.expiresAt, true
		}
	}
	if found {
		delete(s.cache, victim)
	}
}
