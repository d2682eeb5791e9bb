package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MakeServer_Go/internal/domain"
)

// MockReadinessChecker mocks the store readiness probe
type MockReadinessChecker struct {
	mock.Mock
}

func (m *MockReadinessChecker) Ready(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Store lock acquirable", func(t *testing.T) {
		checker := &MockReadinessChecker{}
		checker.On("Ready", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(checker).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		checker.AssertExpectations(t)
	})

	t.Run("Store busy", func(t *testing.T) {
		checker := &MockReadinessChecker{}
		checker.On("Ready", mock.Anything).Return(domain.ErrStoreBusy)

		w := httptest.NewRecorder()
		HandleReadyz(checker).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), HealthStatusUnavailable)
		checker.AssertExpectations(t)
	})
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion().ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"go_version"`)
}

func TestGetVersionInfo(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "1.2.3"
	assert.Equal(t, "1.2.3", getVersionInfo())

	Version = "dev"
	t.Setenv("VERSION", "from-env")
	assert.Equal(t, "from-env", getVersionInfo())
}
