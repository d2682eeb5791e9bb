package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONToYAML_KeepsKeyOrder(t *testing.T) {
	out, err := jsonToYAML([]byte(`{"swagger":"2.0","info":{"title":"MakeServer","version":"1"},"paths":{}}`))
	require.NoError(t, err)

	s := string(out)
	assert.Less(t, strings.Index(s, "swagger"), strings.Index(s, "info"))
	assert.Contains(t, s, "title: MakeServer")
	assert.NotContains(t, s, "{\"")
}

func TestJSONToYAML_Invalid(t *testing.T) {
	_, err := jsonToYAML([]byte(`{"unterminated":`))
	assert.Error(t, err)
}

func TestHandleHelp_Redirects(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHelp().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/help", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, SwaggerIndexPath, w.Header().Get("Location"))
}
