package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "venue"

// Recorder implements shared.Recorder with Prometheus counters.
type Recorder struct {
	ticketsCreated    prometheus.Counter
	webhookEvents     *prometheus.CounterVec
	ticketsSwept      prometheus.Counter
	giftCodesRedeemed prometheus.Counter
	giftCodesExpired  prometheus.Counter
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		ticketsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tickets_created_total",
			Help:      "Tickets persisted by single and basket checkouts",
		}),
		webhookEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_events_total",
			Help:      "Payment webhook deliveries by event type and reconciliation outcome",
		}, []string{"kind", "outcome"}),
		ticketsSwept: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tickets_swept_total",
			Help:      "Pending tickets cancelled by the expiry sweeper",
		}),
		giftCodesRedeemed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gift_codes_redeemed_total",
			Help:      "Gift codes bound to a ticket",
		}),
		giftCodesExpired: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gift_codes_expired_total",
			Help:      "Gift codes flipped to expired by the sweeper",
		}),
	}
}

func (r *Recorder) TicketsCreated(n int) { r.ticketsCreated.Add(float64(n)) }

func (r *Recorder) WebhookEvent(eventType, outcome string) {
	r.webhookEvents.WithLabelValues(eventType, outcome).Inc()
}

func (r *Recorder) TicketsSwept(n int)      { r.ticketsSwept.Add(float64(n)) }
func (r *Recorder) GiftCodesRedeemed(n int) { r.giftCodesRedeemed.Add(float64(n)) }
func (r *Recorder) GiftCodesExpired(n int)  { r.giftCodesExpired.Add(float64(n)) }

// HTTPMetrics tracks request latency per route template.
type HTTPMetrics struct {
	duration *prometheus.HistogramVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	return &HTTPMetrics{
		duration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *HTTPMetrics) Observe(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.duration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
