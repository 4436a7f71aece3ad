// Package session holds the process-wide registry of valid admin tokens.
// Membership in the registry is the sole proof of validity: there is no
// expiry and no persistence, so every token dies with the process.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// tokenBytes gives tokens 128 bits of entropy.
const tokenBytes = 16

// Registry is a concurrent-safe set of issued session tokens. It is
// constructed once at process start and shared by the login handler and the
// authentication middleware.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		tokens: make(map[string]struct{}),
	}
}

// Issue generates a new opaque token and records it as valid. Tokens are
// hex-encoded random bytes; rand.Read never fails on supported platforms.
func (r *Registry) Issue() string {
	buf := make([]byte, tokenBytes)
	_, _ = rand.Read(buf)
	token := hex.EncodeToString(buf)

	r.mu.Lock()
	r.tokens[token] = struct{}{}
	r.mu.Unlock()

	return token
}

// IsValid reports whether token was issued by this registry and has not been
// revoked. An unknown token is indistinguishable from one that never existed.
func (r *Registry) IsValid(token string) bool {
	if token == "" {
		return false
	}

	r.mu.RLock()
	_, ok := r.tokens[token]
	r.mu.RUnlock()

	return ok
}

// Revoke removes token from the registry. Revoking an unknown token is a
// no-op.
func (r *Registry) Revoke(token string) {
	r.mu.Lock()
	delete(r.tokens, token)
	r.mu.Unlock()
}

// Len returns the number of currently valid tokens.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}
