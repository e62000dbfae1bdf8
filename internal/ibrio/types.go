package ibrio

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Caller sends a single JSON-RPC request.
	Caller interface {
		Call(ctx context.Context, method string, params, result any) error
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
