// SPDX-License-Identifier: MIT

// Package metrics exposes the daemon's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	normalizationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "statusd_normalizations_total",
		Help: "Status normalizations by outcome",
	}, []string{"outcome"}) // outcome=known|unknown|empty

	interpretRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "statusd_interpret_requests_total",
		Help: "Interpret requests by resolved canonical status",
	}, []string{"status"})

	navigationDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "statusd_navigation_decisions_total",
		Help: "Navigation decisions by target",
	}, []string{"target"}) // target=prescription-history|create-prescription|none

	validationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "statusd_validation_failures_total",
		Help: "Total number of status validation failures",
	})
)

func IncNormalization(outcome string) { normalizationsTotal.WithLabelValues(outcome).Inc() }

func IncInterpret(status string) { interpretRequestsTotal.WithLabelValues(status).Inc() }

func IncNavigationDecision(target string) { navigationDecisionsTotal.WithLabelValues(target).Inc() }

func IncValidationFailure() { validationFailuresTotal.Inc() }
