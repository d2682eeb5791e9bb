// Package apikey holds the role-tagged API keys that gate staff operations.
package apikey

import (
	"sync"

	"github.com/osse101/MakeServer_Go/internal/domain"
)

// Entry describes what a key is allowed to do. A key bound to a user also
// carries the roles of that user's current auth level; resolving those is the
// caller's job because user records live in the store.
type Entry struct {
	Roles  domain.RoleSet
	UserID *uint64
	Label  string
}

// BoundTo reports the user the key belongs to, if any
func (e Entry) BoundTo() (uint64, bool) {
	if e.UserID == nil {
		return 0, false
	}
	return *e.UserID, true
}

// Registry maps opaque tokens to entries. It is read on every gated request and
// written only when keys are provisioned or revoked.
type Registry struct {
	mu   sync.RWMutex
	keys map[string]Entry
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{keys: make(map[string]Entry)}
}

// Grant provisions key with entry, replacing any previous entry
func (r *Registry) Grant(key string, entry Entry) error {
	if key == "" {
		return ErrEmptyKey
	}
	if entry.UserID != nil {
		id := *entry.UserID
		entry.UserID = &id
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[key] = entry
	return nil
}

// GrantRoles is a shorthand for keys that are not bound to a user
func (r *Registry) GrantRoles(key, label string, roles ...domain.Role) error {
	return r.Grant(key, Entry{Roles: domain.NewRoleSet(roles...), Label: label})
}

// Revoke removes key. It reports whether the key existed.
func (r *Registry) Revoke(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.keys[key]
	delete(r.keys, key)
	return ok
}

// Lookup returns the entry for key in a single read acquisition
func (r *Registry) Lookup(key string) (Entry, bool) {
	if key == "" {
		return Entry{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.keys[key]
	if ok && e.UserID != nil {
		id := *e.UserID
		e.UserID = &id
	}
	return e, ok
}

// Validate reports whether key holds Admin or any of required. Only the
// statically granted roles are considered; see ValidateWith for user-bound keys.
func (r *Registry) Validate(key string, required ...domain.Role) bool {
	return r.ValidateWith(key, nil, required...)
}

// ValidateWith is the combined role check: one lookup, then Admin or any of
// required against the key's roles joined with userRoles of its bound user.
// userRoles may be nil. It is called while the registry lock is not held.
func (r *Registry) ValidateWith(key string, userRoles func(userID uint64) domain.RoleSet, required ...domain.Role) bool {
	e, ok := r.Lookup(key)
	if !ok {
		return false
	}
	roles := e.Roles
	if id, bound := e.BoundTo(); bound && userRoles != nil {
		roles = roles.Union(userRoles(id))
	}
	return roles.Satisfies(required...)
}

// ValidateAdmin reports whether key is an admin key
func (r *Registry) ValidateAdmin(key string) bool {
	return r.Validate(key, domain.RoleAdmin)
}

// Len returns the number of provisioned keys
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.keys)
}
