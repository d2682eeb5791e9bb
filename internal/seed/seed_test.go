package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MakeServer_Go/internal/apikey"
	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/store"
)

const fixtureYAML = `
users:
  - college_id: 1
    name: Ada
    college_email: ada@example.edu
    auth_level: admin
  - college_id: 7
    name: Seven
    passed_quizzes: [laser, laser, band_saw]
    auth_level: Student
inventory:
  - name: Drill
    uuid: u-1
    brand: Makita
    quantity_total: 2
    locations:
      - room: Main
        container: Cabinet A
  - name: Multimeter
quizzes:
  - name: laser
    title: Laser cutter
storage_slots: [A1, A2]
printers:
  - name: prusa-1
    model: MK4
    credential: secret
api_keys:
  - key: admin-key
    label: admin
    roles: [admin]
  - key: desk-key
    label: desk
    roles: [checkout_staff, storage]
  - key: seven-key
    label: user 7
    user_id: 7
`

func TestLoadAndPopulate(t *testing.T) {
	f, err := Load(strings.NewReader(fixtureYAML))
	require.NoError(t, err)

	st := store.New(store.Options{})
	keys := apikey.NewRegistry()
	sum, err := f.Populate(context.Background(), st, keys)
	require.NoError(t, err)

	assert.Equal(t, Summary{Users: 2, Items: 2, Quizzes: 1, Slots: 2, Printers: 1, Keys: 3, AdminKeys: 1}, sum)
	assert.True(t, keys.ValidateAdmin("admin-key"))
	assert.True(t, keys.Validate("desk-key", domain.RoleStudentStorageStaff))
	assert.False(t, keys.Validate("seven-key", domain.RoleCheckoutStaff))

	entry, ok := keys.Lookup("seven-key")
	require.True(t, ok)
	id, bound := entry.BoundTo()
	assert.True(t, bound)
	assert.Equal(t, uint64(7), id)

	require.NoError(t, st.View(context.Background(), func(tx *store.Tables) error {
		seven, err := tx.Users.Get(7)
		require.NoError(t, err)
		assert.Equal(t, []string{"band_saw", "laser"}, seven.PassedQuizzes)
		assert.Equal(t, domain.AuthLevelStudent, seven.AuthLevel)

		ada, err := tx.Users.Get(1)
		require.NoError(t, err)
		assert.Equal(t, domain.AuthLevelAdmin, ada.AuthLevel)

		drill, err := tx.Inventory.ByUUID("u-1")
		require.NoError(t, err)
		assert.Equal(t, "Cabinet A", drill.Locations[0].Container)
		assert.Equal(t, 2, *drill.QuantityTotal)
		return nil
	}))
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("users:\n  - college_id: 1\n    nmae: typo\n"))
	assert.Error(t, err)
}

func TestLoad_EmptyDocument(t *testing.T) {
	f, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Users)
}

func TestPopulate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"duplicate user", "users:\n  - college_id: 1\n  - college_id: 1\n"},
		{"duplicate uuid", "inventory:\n  - {name: A, uuid: x}\n  - {name: B, uuid: x}\n"},
		{"duplicate slot", "storage_slots: [A1, A1]\n"},
		{"printer without credential", "printers:\n  - name: p\n"},
		{"unknown role", "api_keys:\n  - {key: k, roles: [janitor]}\n"},
		{"empty key", "api_keys:\n  - {key: '', roles: [admin]}\n"},
		{"key without roles", "api_keys:\n  - {key: k}\n"},
		{"key bound to unknown user", "api_keys:\n  - {key: k, user_id: 9}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Load(strings.NewReader(tt.yaml))
			require.NoError(t, err)

			keys := apikey.NewRegistry()
			_, err = f.Populate(context.Background(), store.New(store.Options{}), keys)
			assert.Error(t, err)
			assert.Zero(t, keys.Len(), "no key is provisioned from a rejected fixture")
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.APIKeys, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_ExampleFixture(t *testing.T) {
	f, err := LoadFile(filepath.Join("..", "..", "configs", "seed.example.yaml"))
	require.NoError(t, err)

	sum, err := f.Populate(context.Background(), store.New(store.Options{}), apikey.NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Items)
	assert.Equal(t, 5, sum.Slots)
	assert.Zero(t, sum.AdminKeys, "the example relies on ADMIN_API_KEYS for admin access")
}
