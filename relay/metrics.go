package relay

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "hart_relay"

type metrics struct {
	relayed    prometheus.Counter
	skipped    prometheus.Counter
	failed     prometheus.Counter
	checkpoint *prometheus.GaugeVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		relayed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "relayed_total",
			Help:      "Number of burns minted on the destination ledger",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "skipped_total",
			Help:      "Number of burns skipped as already minted or malformed",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "failed_total",
			Help:      "Number of failed relay attempts",
		}),
		checkpoint: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "checkpoint",
			Help:      "Last processed burn ID per origin network",
		}, []string{"network"}),
	}

	if reg != nil {
		reg.MustRegister(m.relayed, m.skipped, m.failed, m.checkpoint)
	}

	return m
}
