package watson

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const startTimeKey = "start_time"

// Metrics records per-operation call counts and latencies.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg when reg is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "watson",
			Name:      "requests_total",
			Help:      "Watson service calls by operation and status code.",
		}, []string{"operation", "code"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "watson",
			Name:      "request_duration_seconds",
			Help:      "Watson service call latency by operation.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"operation"}),
	}

	if reg != nil {
		reg.MustRegister(metrics.Requests, metrics.Duration)
	}

	return metrics
}

// RequestInterceptor stamps the call start time.
func (m *Metrics) RequestInterceptor() RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata[startTimeKey] = time.Now()

		return nil
	}
}

// ResponseInterceptor counts the call and observes its latency.
func (m *Metrics) ResponseInterceptor() ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		code := "error"
		if resp.StatusCode > 0 {
			code = strconv.Itoa(resp.StatusCode)
		}

		m.Requests.WithLabelValues(req.Operation, code).Inc()

		if startTime, ok := req.Metadata[startTimeKey].(time.Time); ok {
			m.Duration.WithLabelValues(req.Operation).Observe(time.Since(startTime).Seconds())
		}

		return nil
	}
}

// Register adds both interceptors to chain.
func (m *Metrics) Register(chain *InterceptorChain) {
	chain.AddRequestInterceptor(m.RequestInterceptor())
	chain.AddResponseInterceptor(m.ResponseInterceptor())
}
