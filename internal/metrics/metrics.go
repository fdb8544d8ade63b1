package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AgentProvisionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "futureyou",
			Name:      "agent_provision_total",
			Help:      "Agent creation requests by outcome",
		},
		[]string{"outcome"},
	)

	AgentProvisionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "futureyou",
			Name:      "agent_provision_duration_seconds",
			Help:      "Time spent waiting on the provisioning service",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
)
