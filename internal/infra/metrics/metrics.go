// Package metrics exposes business counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"cheeserater/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "cheeserater"

type recorder struct {
	derivations  *prometheus.HistogramVec
	reviews      *prometheus.CounterVec
	cheesesAdded prometheus.Counter
	ownerChecks  *prometheus.CounterVec
}

// NewRegistry creates a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New registers the business metrics on reg.
func New(reg prometheus.Registerer) service.Metrics {
	factory := promauto.With(reg)

	return &recorder{
		derivations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_derivation_seconds",
			Help:      "Time spent deriving the displayed catalog",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"view", "sort"}),
		reviews: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_submitted_total",
			Help:      "Reviews submitted, split by whether a new review was created",
		}, []string{"created"}),
		cheesesAdded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cheeses_added_total",
			Help:      "Catalog entries added by the owner",
		}),
		ownerChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "owner_checks_total",
			Help:      "Owner credential checks by outcome",
		}, []string{"outcome"}),
	}
}

func (r *recorder) ObserveDerive(view, sort string, elapsed time.Duration) {
	r.derivations.WithLabelValues(view, sort).Observe(elapsed.Seconds())
}

func (r *recorder) ReviewSubmitted(created bool) {
	r.reviews.WithLabelValues(strconv.FormatBool(created)).Inc()
}

func (r *recorder) CheeseAdded() {
	r.cheesesAdded.Inc()
}

func (r *recorder) OwnerCheck(outcome string) {
	r.ownerChecks.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// Module provides the registry and the recorder
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		fx.Annotate(New, fx.From(new(*prometheus.Registry))),
	),
)
