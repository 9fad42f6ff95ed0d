package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/winery-map/internal/domain"
)

type Metrics struct {
	FetchSeconds   prometheus.Histogram
	FetchTotal     *prometheus.CounterVec
	RecordsLoaded  prometheus.Gauge
	SelectionTotal *prometheus.CounterVec
	SurfaceTotal   *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		FetchSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "winerymap_record_fetch_duration_seconds",
			Help:    "Duration of the record store fetch.",
			Buckets: prometheus.DefBuckets,
		}),
		FetchTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "winerymap_record_fetch_total",
			Help: "Total number of record store fetches by result.",
		}, []string{"status"}),
		RecordsLoaded: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "winerymap_records_loaded",
			Help: "Number of records loaded in the current data session.",
		}),
		SelectionTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "winerymap_selection_intents_total",
			Help: "Total number of select/clear intents.",
		}, []string{"intent", "changed"}),
		SurfaceTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "winerymap_surface_decisions_total",
			Help: "Total number of presentation surface decisions by surface.",
		}, []string{"surface"}),
	}
}

// ObserveFetch implements usecase.FetchRecorder.
func (m *Metrics) ObserveFetch(duration time.Duration, records int, err error) {
	m.FetchSeconds.Observe(duration.Seconds())
	if err != nil {
		m.FetchTotal.WithLabelValues("error").Inc()
		return
	}
	m.FetchTotal.WithLabelValues("ok").Inc()
	m.RecordsLoaded.Set(float64(records))
}

// ObserveSelection implements usecase.SelectionRecorder.
func (m *Metrics) ObserveSelection(intent string, changed bool) {
	m.SelectionTotal.WithLabelValues(intent, strconv.FormatBool(changed)).Inc()
}

func (m *Metrics) ObserveSurface(surface domain.Surface) {
	m.SurfaceTotal.WithLabelValues(string(surface)).Inc()
}
