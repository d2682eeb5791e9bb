package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_SetQuizPassed(t *testing.T) {
	u := User{CollegeID: 1}
	u.Normalize()

	u.SetQuizPassed("laser", true)
	u.SetQuizPassed("drill_press", true)
	u.SetQuizPassed("laser", true)
	assert.Equal(t, []string{"drill_press", "laser"}, u.PassedQuizzes)
	assert.True(t, u.HasPassedQuiz("laser"))

	u.SetQuizPassed("laser", false)
	assert.Equal(t, []string{"drill_press"}, u.PassedQuizzes)
	assert.False(t, u.HasPassedQuiz("laser"))

	u.SetQuizPassed("never_taken", false)
	assert.Equal(t, []string{"drill_press"}, u.PassedQuizzes)
}

func TestUser_Normalize(t *testing.T) {
	u := User{PassedQuizzes: []string{"b", "a", "b"}}
	u.Normalize()
	assert.Equal(t, []string{"a", "b"}, u.PassedQuizzes)
}

func TestUser_CloneIsIndependent(t *testing.T) {
	u := User{PassedQuizzes: []string{"a"}}
	c := u.Clone()
	c.PassedQuizzes[0] = "z"
	assert.Equal(t, "a", u.PassedQuizzes[0])
}

func TestNewUserInfo_EmptyViews(t *testing.T) {
	info := NewUserInfo(User{CollegeID: 42, Name: "Ada"}, nil, nil)
	assert.Equal(t, uint64(42), info.CollegeID)
	assert.NotNil(t, info.PendingCheckouts)
	assert.NotNil(t, info.AllCheckouts)
	assert.NotNil(t, info.PassedQuizzes)
}

func TestStorageSlot_State(t *testing.T) {
	now := time.Now()
	owner := uint64(7)
	expires := now.Add(time.Hour)

	free := StorageSlot{ID: "A1"}
	assert.Equal(t, SlotStateFree, free.State())
	assert.False(t, free.IsExpired(now))

	taken := StorageSlot{ID: "A2", Owner: &owner, ExpiresAt: &expires}
	assert.Equal(t, SlotStateOccupied, taken.State())
	assert.True(t, taken.IsOwnedBy(7))
	assert.False(t, taken.IsOwnedBy(8))
	assert.False(t, taken.IsExpired(now))
	assert.True(t, taken.IsExpired(now.Add(2*time.Hour)))

	view := NewStorageSlotView(taken)
	*view.Owner = 9
	assert.Equal(t, uint64(7), *taken.Owner)
	assert.Equal(t, SlotStateOccupied, view.State)
}

func TestNotFoundError_Unwrap(t *testing.T) {
	err := fmt.Errorf("checkout: %w", NewNotFound(EntityUser, 42))
	assert.True(t, errors.Is(err, ErrUserNotFound))
	assert.False(t, errors.Is(err, ErrItemNotFound))
	assert.Contains(t, err.Error(), `user "42" not found`)

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "42", nf.Key)
}

func TestUnauthorizedError(t *testing.T) {
	err := &UnauthorizedError{Required: []Role{RoleAdmin, RoleCheckoutStaff}}
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "admin, checkout_staff")
}
