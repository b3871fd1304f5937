package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := New(reg).(*recorder)

	rec.ReviewSubmitted(true)
	rec.ReviewSubmitted(true)
	rec.ReviewSubmitted(false)
	rec.CheeseAdded()
	rec.OwnerCheck("granted")
	rec.OwnerCheck("failed")
	rec.ObserveDerive("all", "rating", 3*time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(rec.reviews.WithLabelValues("true")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.reviews.WithLabelValues("false")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.cheesesAdded), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.ownerChecks.WithLabelValues("failed")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(rec.derivations))
}

func TestHandler(t *testing.T) {
	reg := NewRegistry()
	New(reg).CheeseAdded()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cheeserater_cheeses_added_total 1")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
