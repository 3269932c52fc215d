package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(joins.WithLabelValues(JoinCooldown))
	ObserveJoin(JoinCooldown)
	if got := testutil.ToFloat64(joins.WithLabelValues(JoinCooldown)); got != before+1 {
		t.Fatalf("joins{cooldown} = %v, want %v", got, before+1)
	}

	ObserveDraw("g-metrics", 3)
	ObserveDraw("g-metrics", 2)
	if got := testutil.ToFloat64(draws.WithLabelValues("g-metrics")); got != 2 {
		t.Fatalf("draw rounds = %v, want 2", got)
	}
	if got := testutil.ToFloat64(winners.WithLabelValues("g-metrics")); got != 5 {
		t.Fatalf("winners = %v, want 5", got)
	}

	SetQueueSize("g-metrics", 7)
	SetQueueSize("g-metrics", 4)
	if got := testutil.ToFloat64(queueSize.WithLabelValues("g-metrics")); got != 4 {
		t.Fatalf("queue size = %v, want 4", got)
	}
}
