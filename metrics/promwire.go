package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusCollector adapts a Registry to prometheus.Collector, so
// cmd/ctbench's dudect timing histograms can be scraped with the real
// client library's exposition-format encoder instead of a hand-rolled
// text writer.
type PrometheusCollector struct {
	namespace string
	reg       *Registry
}

// NewPrometheusCollector wraps reg for Prometheus registration. namespace
// is prepended to every metric name (e.g. "ctbench" produces
// "ctbench_fp_mul_ns_mean").
func NewPrometheusCollector(namespace string, reg *Registry) *PrometheusCollector {
	return &PrometheusCollector{namespace: namespace, reg: reg}
}

// Describe satisfies prometheus.Collector. The metric set is dynamic
// (operations are registered by name as cmd/ctbench benchmarks them), so
// this intentionally sends nothing -- callers must register this
// Collector with a prometheus.Registry built with prometheus.NewRegistry,
// which does not require Describe to be exhaustive.
func (c *PrometheusCollector) Describe(ch chan<- *prometheus.Desc) {}

// Collect satisfies prometheus.Collector, emitting one gauge per
// count/sum/min/max/mean for every histogram currently in the registry.
func (c *PrometheusCollector) Collect(ch chan<- prometheus.Metric) {
	for name, h := range c.reg.Histograms() {
		c.emit(ch, name, "count", float64(h.Count()))
		c.emit(ch, name, "sum_ns", h.Sum())
		if h.Count() == 0 {
			continue
		}
		c.emit(ch, name, "min_ns", h.Min())
		c.emit(ch, name, "max_ns", h.Max())
		c.emit(ch, name, "mean_ns", h.Mean())
	}
}

// histogram names carry dots (e.g. "scalarmul.fixed_ns") which are not
// legal Prometheus metric name characters; subsystem/name segments must be
// sanitized before BuildFQName, or NewDesc rejects them at collection time.
func sanitizeMetricSegment(s string) string {
	return strings.NewReplacer(".", "_", "-", "_").Replace(s)
}

func (c *PrometheusCollector) emit(ch chan<- prometheus.Metric, op, suffix string, v float64) {
	fqName := prometheus.BuildFQName(c.namespace, sanitizeMetricSegment(op), suffix)
	desc := prometheus.NewDesc(fqName, "ctbench timing sample for "+op, nil, nil)
	ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, v)
}

// Handler builds a standalone prometheus.Registry containing only this
// collector and returns an http.Handler serving it in the Prometheus text
// exposition format, for cmd/ctbench's "-serve" flag.
func Handler(namespace string, reg *Registry) http.Handler {
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(NewPrometheusCollector(namespace, reg))
	return promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})
}
