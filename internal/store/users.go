package store

import (
	"fmt"
	"sort"

	"github.com/osse101/MakeServer_Go/internal/domain"
)

// Users is the user table keyed by college id. Users are never deleted, so an
// id is never reused.
type Users struct {
	byID map[uint64]*domain.User
}

func newUsers() *Users {
	return &Users{byID: make(map[uint64]*domain.User)}
}

// Add inserts a new user
func (t *Users) Add(u domain.User) error {
	if _, ok := t.byID[u.CollegeID]; ok {
		return fmt.Errorf("%w: %d", domain.ErrUserExists, u.CollegeID)
	}
	if !u.AuthLevel.IsValid() {
		return fmt.Errorf("%w: auth level %d", domain.ErrInvalidInput, int(u.AuthLevel))
	}
	u = u.Clone()
	u.Normalize()
	t.byID[u.CollegeID] = &u
	return nil
}

// Get returns a copy of the user with id
func (t *Users) Get(id uint64) (domain.User, error) {
	u, ok := t.byID[id]
	if !ok {
		return domain.User{}, domain.NewNotFound(domain.EntityUser, id)
	}
	return u.Clone(), nil
}

// Exists reports whether id is a known user
func (t *Users) Exists(id uint64) bool {
	_, ok := t.byID[id]
	return ok
}

// Update applies fn to the stored user in place
func (t *Users) Update(id uint64, fn func(*domain.User)) error {
	u, ok := t.byID[id]
	if !ok {
		return domain.NewNotFound(domain.EntityUser, id)
	}
	fn(u)
	u.CollegeID = id
	return nil
}

// All returns copies of every user ordered by id
func (t *Users) All() []domain.User {
	out := make([]domain.User, 0, len(t.byID))
	for _, u := range t.byID {
		out = append(out, u.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CollegeID < out[j].CollegeID })
	return out
}

// Len returns the number of users
func (t *Users) Len() int {
	return len(t.byID)
}
