package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sizeDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "structure", "size"),
		"Current number of records held by each structure",
		[]string{"structure"}, nil,
	)
	capacityDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "structure", "capacity"),
		"Fixed capacity of each bounded structure",
		[]string{"structure"}, nil,
	)
)

// storeCollector reads Stats on every scrape.
type storeCollector struct {
	source StatsSource
}

func newStoreCollector(source StatsSource) *storeCollector {
	return &storeCollector{source: source}
}

func (c *storeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- sizeDesc
	ch <- capacityDesc
}

func (c *storeCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()

	sizes := map[string]int{
		"primary": s.Primary,
		"array":   s.Array,
		"linked":  s.Linked,
		"queue":   s.Queue,
		"undo":    s.Undo,
		"tree":    s.Tree,
	}
	for name, v := range sizes {
		ch <- prometheus.MustNewConstMetric(sizeDesc, prometheus.GaugeValue, float64(v), name)
	}

	capacities := map[string]int{
		"array": s.ArrayCapacity,
		"queue": s.QueueCapacity,
		"undo":  s.UndoCapacity,
	}
	for name, v := range capacities {
		ch <- prometheus.MustNewConstMetric(capacityDesc, prometheus.GaugeValue, float64(v), name)
	}
}
