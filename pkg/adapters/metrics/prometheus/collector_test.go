package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// NewCollector registers with the default registry, so the whole package
// shares this single instance.
func TestCollectorRecordsOutcomes(t *testing.T) {
	c := NewCollector()

	c.RecordQuery("success", 10*time.Millisecond)
	c.RecordQuery("success", 20*time.Millisecond)
	c.RecordQuery("upstream_error", 5*time.Millisecond)
	c.RecordConnectionTest("connection_error", time.Millisecond)
	c.RecordRepositoryListing("success", time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.queries.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.queries.WithLabelValues("upstream_error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.connectionTests.WithLabelValues("connection_error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.repositoryListings.WithLabelValues("success")))

	// One histogram series per upstream operation.
	assert.Equal(t, 3, testutil.CollectAndCount(c.upstreamDuration))
}
