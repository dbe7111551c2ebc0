package api

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const mfaTokenTTL = 5 * time.Minute

type mfaChallenge struct {
	email     string
	expiresAt time.Time
}

// mfaTokenStore holds the pending tokens issued between the mock login
// and MFA verification steps. Tokens are single-use and pruned on every
// issue.
type mfaTokenStore struct {
	mu      sync.Mutex
	pending map[string]mfaChallenge
}

func newMFATokenStore() *mfaTokenStore {
	return &mfaTokenStore{pending: make(map[string]mfaChallenge)}
}

func (store *mfaTokenStore) issue(email string, now time.Time) string {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.pruneLocked(now)
	token := uuid.NewString()
	store.pending[token] = mfaChallenge{email: email, expiresAt: now.Add(mfaTokenTTL)}
	return token
}

func (store *mfaTokenStore) consume(token string, now time.Time) (string, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	challenge, ok := store.pending[token]
	if !ok || now.After(challenge.expiresAt) {
		return "", false
	}
	delete(store.pending, token)
	return challenge.email, true
}

func (store *mfaTokenStore) pruneLocked(now time.Time) {
	for token, challenge := range store.pending {
		if now.After(challenge.expiresAt) {
			delete(store.pending, token)
		}
	}
}
