// File: metrics/metrics_test.go
package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/incrediblejr/ijcringbuffer/pool"
)

func TestRingMetricsSampleAccumulatesDeltas(t *testing.T) {
	sr := pool.NewSafeRing(make([]byte, 16), 16)
	m := NewRingMetrics(t.Name())

	sr.Produce([]byte("abc"))
	m.Sample(sr)
	if got := testutil.ToFloat64(m.ProducedTotal); got != 1 {
		t.Fatalf("ProducedTotal = %v, want 1", got)
	}

	sr.Produce([]byte("de"))
	sr.Produce([]byte("f"))
	m.Sample(sr)
	if got := testutil.ToFloat64(m.ProducedTotal); got != 3 {
		t.Fatalf("ProducedTotal after second sample = %v, want 3", got)
	}

	if got := testutil.ToFloat64(m.Capacity); got != 16 {
		t.Fatalf("Capacity = %v, want 16", got)
	}
}
