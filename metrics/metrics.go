// Package metrics exports Prometheus instrumentation for A* searches.
//
// A Recorder plugs into the step-notification interface (astar.WithOnStep)
// and classifies finished calls with Observe:
//
//	rec := metrics.NewRecorder(prometheus.DefaultRegisterer)
//	res, err := astar.Search(g, astar.WithOnStep(rec.OnStep))
//	rec.Observe(res, err)
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridpath/astar"
)

// Outcome labels used by gridpath_searches_total.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
	OutcomeCancelled = "cancelled"
	OutcomeLimit     = "limit"
	OutcomeInvalid   = "invalid"
)

// Recorder holds the search collectors registered on one Registerer.
type Recorder struct {
	transitions *prometheus.CounterVec
	searches    *prometheus.CounterVec
	expanded    prometheus.Histogram
	pathLength  prometheus.Histogram
}

// NewRecorder creates and registers the collectors on reg.
// It panics if they are already registered there, as promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_cell_transitions_total",
			Help: "Cell state transitions emitted by searches, by state",
		}, []string{"state"}),
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Finished searches by outcome",
		}, []string{"outcome"}),
		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_expanded_cells",
			Help:    "Frontier pops per completed search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		pathLength: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_path_length",
			Help:    "Cells on found paths, endpoints included",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
}

// OnStep counts one transition. Pass it to astar.WithOnStep.
func (r *Recorder) OnStep(s astar.Step) {
	r.transitions.WithLabelValues(s.State.String()).Inc()
}

// Observe classifies the return values of astar.FindPath or astar.Search
// and returns the outcome label it counted.
func (r *Recorder) Observe(res *astar.Result, err error) string {
	outcome := Classify(res, err)
	r.searches.WithLabelValues(outcome).Inc()
	if err == nil && res != nil {
		r.expanded.Observe(float64(res.Expanded))
		if res.Found {
			r.pathLength.Observe(float64(len(res.Path)))
		}
	}

	return outcome
}

// Classify maps a search result to one of the Outcome labels.
func Classify(res *astar.Result, err error) string {
	switch {
	case errors.Is(err, astar.ErrCancelled):
		return OutcomeCancelled
	case errors.Is(err, astar.ErrExpansionLimit):
		return OutcomeLimit
	case err != nil, res == nil:
		return OutcomeInvalid
	case res.Found:
		return OutcomeFound
	default:
		return OutcomeExhausted
	}
}
