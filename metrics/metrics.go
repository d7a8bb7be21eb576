package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pageRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_page_renders_total",
			Help: "Total number of pages served, by page and cache result",
		},
		[]string{"page", "cache"},
	)

	tripSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_submissions_total",
			Help: "Total number of trip form submissions, by result",
		},
		[]string{"result"},
	)

	travelersPerTrip = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trip_travelers",
			Help:    "Number of travelers on accepted trip submissions",
			Buckets: []float64{1, 2, 3, 4, 6, 8, 12},
		},
	)
)

// RecordPageRender counts a served page. Hit reports whether it came from
// the page cache.
func RecordPageRender(page string, hit bool) {
	cache := "miss"
	if hit {
		cache = "hit"
	}
	pageRendersTotal.WithLabelValues(page, cache).Inc()
}

// RecordTripAccepted counts an accepted trip with the given traveler count.
func RecordTripAccepted(travelers int) {
	tripSubmissionsTotal.WithLabelValues("accepted").Inc()
	travelersPerTrip.Observe(float64(travelers))
}

// RecordTripRejected counts a trip that failed validation.
func RecordTripRejected() {
	tripSubmissionsTotal.WithLabelValues("rejected").Inc()
}
