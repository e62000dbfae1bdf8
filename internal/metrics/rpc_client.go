package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/ibrio-forkmaker/internal/model"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ibrio_forkmaker",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "network", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ibrio_forkmaker",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// RPCClient tracks metrics for RPC calls to the ibrio node.
type RPCClient struct {
	network model.Network
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(network model.Network) *RPCClient {
	if network == "" {
		network = "unknown"
	}
	return &RPCClient{network: network}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	rpcRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	rpcRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
