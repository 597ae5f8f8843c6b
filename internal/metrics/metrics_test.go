package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCalculationsCounter(t *testing.T) {
	before := testutil.ToFloat64(Calculations.WithLabelValues("zakat", OutcomeSuccess))
	Calculations.WithLabelValues("zakat", OutcomeSuccess).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(Calculations.WithLabelValues("zakat", OutcomeSuccess)))
}

func TestHandlerExposesCollectors(t *testing.T) {
	PriceCacheLookups.WithLabelValues(CacheHit).Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "islamicfin_price_cache_total")
}
