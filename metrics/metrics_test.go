package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.ObserveValidation("CreateBrand", "body", OutcomeValid)
	m.ObserveValidation("CreateBrand", "body", OutcomeValid)
	m.ObserveValidation("CreateBrand", "body", OutcomeInvalid)
	m.ObserveToolCall("validate_request", OutcomeOK)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.validationTotal.WithLabelValues("CreateBrand", "body", OutcomeValid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationTotal.WithLabelValues("CreateBrand", "body", OutcomeInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.toolCallsTotal.WithLabelValues("validate_request", OutcomeOK)))

	t.Run("handler", func(t *testing.T) {
		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.True(t, strings.Contains(body, `mailschema_validation_total{operation="CreateBrand",outcome="invalid",part="body"} 1`), body)
		assert.Contains(t, body, "mailschema_tool_calls_total")
	})

	t.Run("registries are private", func(t *testing.T) {
		other, err := New()
		require.NoError(t, err)
		assert.Equal(t, 0.0, testutil.ToFloat64(other.validationTotal.WithLabelValues("CreateBrand", "body", OutcomeValid)))
	})
}
