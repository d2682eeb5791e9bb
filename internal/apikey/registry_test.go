package apikey

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MakeServer_Go/internal/domain"
)

func TestRegistry_Validate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.GrantRoles("admin-key", "admin", domain.RoleAdmin))
	require.NoError(t, r.GrantRoles("checkout-key", "desk", domain.RoleCheckoutStaff))
	require.NoError(t, r.GrantRoles("storage-key", "lockers", domain.RoleStudentStorageStaff))

	tests := []struct {
		name     string
		key      string
		required []domain.Role
		want     bool
	}{
		{"admin passes admin", "admin-key", []domain.Role{domain.RoleAdmin}, true},
		{"admin passes checkout", "admin-key", []domain.Role{domain.RoleCheckoutStaff}, true},
		{"admin passes storage", "admin-key", []domain.Role{domain.RoleStudentStorageStaff}, true},
		{"checkout passes checkout", "checkout-key", []domain.Role{domain.RoleCheckoutStaff}, true},
		{"checkout fails admin", "checkout-key", []domain.Role{domain.RoleAdmin}, false},
		{"storage fails checkout", "storage-key", []domain.Role{domain.RoleCheckoutStaff}, false},
		{"unknown key fails", "nope", []domain.Role{domain.RoleCheckoutStaff}, false},
		{"empty key fails", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Validate(tt.key, tt.required...))
		})
	}

	assert.True(t, r.ValidateAdmin("admin-key"))
	assert.False(t, r.ValidateAdmin("checkout-key"))
}

func TestRegistry_ValidateWithBoundUser(t *testing.T) {
	r := NewRegistry()
	seven := uint64(7)
	require.NoError(t, r.Grant("seven-key", Entry{UserID: &seven, Label: "user 7"}))
	require.NoError(t, r.GrantRoles("desk-key", "desk", domain.RoleCheckoutStaff))

	var asked []uint64
	storageStaff := func(id uint64) domain.RoleSet {
		asked = append(asked, id)
		return domain.NewRoleSet(domain.RoleStudentStorageStaff)
	}

	assert.False(t, r.ValidateWith("seven-key", nil, domain.RoleStudentStorageStaff))
	assert.True(t, r.ValidateWith("seven-key", storageStaff, domain.RoleStudentStorageStaff))
	assert.False(t, r.ValidateWith("seven-key", storageStaff, domain.RoleAdmin))
	assert.True(t, r.ValidateWith("desk-key", storageStaff, domain.RoleCheckoutStaff))
	assert.False(t, r.ValidateWith("missing", storageStaff, domain.RoleCheckoutStaff))

	assert.Equal(t, []uint64{7, 7}, asked, "only bound keys resolve user roles")
}

func TestRegistry_GrantRejectsEmptyKey(t *testing.T) {
	r := NewRegistry()
	assert.ErrorIs(t, r.GrantRoles("", "x", domain.RoleAdmin), ErrEmptyKey)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_Revoke(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.GrantRoles("k", "k", domain.RoleAdmin))

	assert.True(t, r.Revoke("k"))
	assert.False(t, r.Revoke("k"))
	assert.False(t, r.Validate("k", domain.RoleAdmin))
}

func TestRegistry_LookupCopiesUserBinding(t *testing.T) {
	r := NewRegistry()
	id := uint64(7)
	require.NoError(t, r.Grant("user-key", Entry{UserID: &id}))
	id = 99

	e, ok := r.Lookup("user-key")
	require.True(t, ok)
	bound, ok := e.BoundTo()
	require.True(t, ok)
	assert.Equal(t, uint64(7), bound)

	*e.UserID = 123
	e2, _ := r.Lookup("user-key")
	assert.Equal(t, uint64(7), *e2.UserID)
}

func TestRegistry_ConcurrentValidateAndRevoke(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.GrantRoles("k", "k", domain.RoleCheckoutStaff))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = r.Validate("k", domain.RoleCheckoutStaff)
		}()
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				r.Revoke("k")
			} else {
				_ = r.GrantRoles("k", "k", domain.RoleCheckoutStaff)
			}
		}(i)
	}
	wg.Wait()
}
