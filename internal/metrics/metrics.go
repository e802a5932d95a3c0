// Package metrics exposes the prometheus instruments for the submission
// pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submissions counts form submissions by form type and outcome
// (accepted, invalid, conflict, error).
var Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "loomtrade",
	Name:      "submissions_total",
	Help:      "Form submissions by form and outcome.",
}, []string{"form", "outcome"})

func Handler() http.Handler { return promhttp.Handler() }
