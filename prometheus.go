package vec

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/vec/internal/alloc"
)

type collector struct {
	allocs     *prometheus.Desc
	reallocs   *prometheus.Desc
	frees      *prometheus.Desc
	liveBlocks *prometheus.Desc
	liveBytes  *prometheus.Desc
}

// NewCollector returns a prometheus.Collector exporting the process-wide
// storage counters (see Stats) under the given namespace and the "vec"
// subsystem.
func NewCollector(namespace string) prometheus.Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "vec", name),
			help,
			nil,
			prometheus.Labels{"component": "vec"},
		)
	}
	return &collector{
		allocs:     desc("allocations_total", "Number of storage blocks allocated"),
		reallocs:   desc("reallocations_total", "Number of times storage was grown"),
		frees:      desc("frees_total", "Number of storage blocks released"),
		liveBlocks: desc("live_blocks", "Number of storage blocks currently held"),
		liveBytes:  desc("live_bytes", "Bytes of storage currently held"),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.allocs
	ch <- c.reallocs
	ch <- c.frees
	ch <- c.liveBlocks
	ch <- c.liveBytes
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	s := alloc.Stats()
	ch <- prometheus.MustNewConstMetric(c.allocs, prometheus.CounterValue, float64(s.Allocs))
	ch <- prometheus.MustNewConstMetric(c.reallocs, prometheus.CounterValue, float64(s.Reallocs))
	ch <- prometheus.MustNewConstMetric(c.frees, prometheus.CounterValue, float64(s.Frees))
	ch <- prometheus.MustNewConstMetric(c.liveBlocks, prometheus.GaugeValue, float64(s.LiveBlocks))
	ch <- prometheus.MustNewConstMetric(c.liveBytes, prometheus.GaugeValue, float64(s.LiveBytes))
}
