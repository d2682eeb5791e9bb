package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MakeServer_Go/internal/alert"
	"github.com/osse101/MakeServer_Go/internal/config"
	"github.com/osse101/MakeServer_Go/internal/domain"
)

type recordingAlerter struct {
	mu     sync.Mutex
	alerts []alert.Alert
}

func (r *recordingAlerter) Alert(_ context.Context, a alert.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, a)
	return nil
}

func (r *recordingAlerter) keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.alerts))
	for i, a := range r.alerts {
		out[i] = a.Key
	}
	return out
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                 8080,
		LogDir:               "logs",
		Environment:          "test",
		StoreLockTimeout:     time.Second,
		StorageRentalPeriod:  24 * time.Hour,
		StorageSweepInterval: time.Hour,
		AlertCooldown:        time.Minute,
		WorkerCount:          1,
		WorkerQueueSize:      8,
	}
}

func shutdown(t *testing.T, app *App) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	app.Shutdown(ctx)
}

func TestBuild_RequiresAdminKey(t *testing.T) {
	cfg := testConfig()
	cfg.CheckoutAPIKeys = []string{"desk-key"}

	app, err := Build(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrNoAdminKey)
	assert.Nil(t, app)

	cfg.SeedFile = "testdata/no_admin.yaml"
	_, err = Build(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrNoAdminKey, "a seed without admin keys is not enough")
}

func TestBuild_EnvKeys(t *testing.T) {
	cfg := testConfig()
	cfg.AdminAPIKeys = []string{"env-admin"}
	cfg.CheckoutAPIKeys = []string{"desk-key"}
	cfg.StorageAPIKeys = []string{"locker-key"}

	app, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer shutdown(t, app)

	assert.Equal(t, 3, app.Keys.Len())
	assert.True(t, app.Keys.ValidateAdmin("env-admin"))
	assert.True(t, app.Keys.Validate("desk-key", domain.RoleCheckoutStaff))
	assert.False(t, app.Keys.Validate("desk-key", domain.RoleAdmin))
	assert.True(t, app.Keys.Validate("locker-key", domain.RoleStudentStorageStaff))

	users, err := app.Service.GetAllUsers(context.Background(), "env-admin")
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestBuild_Seeded(t *testing.T) {
	cfg := testConfig()
	cfg.SeedFile = "testdata/seed.yaml"

	app, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer shutdown(t, app)

	ctx := context.Background()
	users, err := app.Service.GetAllUsers(ctx, "seed-admin")
	require.NoError(t, err)
	assert.Len(t, users, 2)

	entry, err := app.Service.CheckoutItemByUUID(ctx, 7, "drill-1", "seven-key")
	require.NoError(t, err)
	assert.Equal(t, "Drill", entry.ItemName)

	rec := httptest.NewRecorder()
	app.Server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBuild_SeedErrors(t *testing.T) {
	cfg := testConfig()
	cfg.AdminAPIKeys = []string{"env-admin"}
	cfg.SeedFile = "testdata/missing.yaml"

	_, err := Build(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), ErrMsgSeedFailed))
}

func TestBuild_FailedAuthAlertReachesAlerter(t *testing.T) {
	cfg := testConfig()
	cfg.AdminAPIKeys = []string{"env-admin"}
	rec := &recordingAlerter{}

	app, err := build(context.Background(), cfg, rec)
	require.NoError(t, err)
	defer shutdown(t, app)

	for i := 0; i < 6; i++ {
		w := httptest.NewRecorder()
		app.Server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/checkouts/log/guess", nil))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	require.Eventually(t, func() bool { return len(rec.keys()) > 0 }, time.Second, 10*time.Millisecond)
	keys := rec.keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "failed_auth:"))
}

func TestNewAlerter(t *testing.T) {
	cfg := testConfig()
	a, err := newAlerter(cfg)
	require.NoError(t, err)
	assert.IsType(t, &alert.LogAlerter{}, a)

	cfg.DiscordWebhookID = "123"
	cfg.DiscordWebhookToken = "token"
	a, err = newAlerter(cfg)
	require.NoError(t, err)
	multi, ok := a.(alert.Multi)
	require.True(t, ok)
	assert.Len(t, multi, 2)
}
