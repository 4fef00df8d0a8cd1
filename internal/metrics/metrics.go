package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Metrics are the process-local counters exposed on the status endpoint.
type Metrics struct {
	OrdersCreated        Counter
	SubmissionsRejected  Counter
	NotificationFailures Counter
	CheckoutNanos        Counter
}

func New() *Metrics {
	return &Metrics{}
}

// ObserveCheckout accumulates the wall time of completed submissions.
func (m *Metrics) ObserveCheckout(t *Timer) {
	m.CheckoutNanos.Add(uint64(t.Duration()))
}

func (m *Metrics) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"orders_created":        m.OrdersCreated.Load(),
		"submissions_rejected":  m.SubmissionsRejected.Load(),
		"notification_failures": m.NotificationFailures.Load(),
		"checkout_nanos_total":  m.CheckoutNanos.Load(),
	}
}
