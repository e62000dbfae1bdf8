package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/ibrio-forkmaker/internal/model"
)

var (
	provisionerStepTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ibrio_forkmaker",
		Subsystem: "provisioner",
		Name:      "step_total",
		Help:      "Count of fork provisioning steps by outcome.",
	}, []string{"network", "step", "status"})

	provisionerStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ibrio_forkmaker",
		Subsystem: "provisioner",
		Name:      "step_duration_seconds",
		Help:      "Duration of fork provisioning steps.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
	}, []string{"network", "step", "status"})

	provisionerPollTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ibrio_forkmaker",
		Subsystem: "provisioner",
		Name:      "confirmation_polls_total",
		Help:      "Count of funding transaction status polls.",
	}, []string{"network", "confirmed"})

	provisionerOutcomeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ibrio_forkmaker",
		Subsystem: "provisioner",
		Name:      "outcome_total",
		Help:      "Count of provisioning runs by terminal status.",
	}, []string{"network", "status"})
)

// Provisioner tracks metrics for the fork provisioning workflow.
type Provisioner struct {
	network model.Network
}

// NewProvisioner constructs a Provisioner with defaults.
func NewProvisioner(network model.Network) *Provisioner {
	if network == "" {
		network = "unknown"
	}
	return &Provisioner{network: network}
}

// ObserveStep records a workflow step outcome and duration.
func (m Provisioner) ObserveStep(step string, err error, started time.Time) {
	status := statusOf(err)
	provisionerStepTotal.WithLabelValues(string(m.network), step, status).Inc()
	provisionerStepDuration.WithLabelValues(string(m.network), step, status).
		Observe(time.Since(started).Seconds())
}

// ObservePoll records one confirmation poll.
func (m Provisioner) ObservePoll(confirmed bool) {
	provisionerPollTotal.WithLabelValues(string(m.network), strconv.FormatBool(confirmed)).Inc()
}

// ObserveOutcome records the terminal status of a run.
func (m Provisioner) ObserveOutcome(status model.ProvisionStatus) {
	provisionerOutcomeTotal.WithLabelValues(string(m.network), string(status)).Inc()
}
