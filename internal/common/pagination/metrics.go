package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// List page metrics, labelled by list name (veterans, admin_news, api_news, ...).
var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "museum_list_requests_total",
		Help: "Rendered list pages by list and requested page bucket.",
	}, []string{"list", "page_range"})

	ResultSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "museum_list_result_size",
		Help:    "Records left after search and filters.",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"list"})

	EmptyResultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "museum_list_empty_results_total",
		Help: "List pages whose filtered set was empty.",
	}, []string{"list"})
)

// RecordRequest observes one rendered list page with total matching records.
func RecordRequest(list string, page, total int) {
	RequestsTotal.WithLabelValues(list, pageBucket(page)).Inc()
	ResultSize.WithLabelValues(list).Observe(float64(total))
	if total == 0 {
		EmptyResultsTotal.WithLabelValues(list).Inc()
	}
}

// pageBucket keeps page_range cardinality fixed.
func pageBucket(page int) string {
	for _, b := range [...]struct {
		upTo  int
		label string
	}{{1, "1"}, {5, "2-5"}, {20, "6-20"}} {
		if page <= b.upTo {
			return b.label
		}
	}
	return "21+"
}
