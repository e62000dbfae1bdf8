// Package model defines domain models for fork provisioning.
package model

import "fmt"

// Network identifies which ibrio network the node serves.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

var defaultEndpoints = map[Network]string{
	Mainnet: "http://127.0.0.1:6602",
	Testnet: "http://127.0.0.1:6604",
}

// Endpoint returns the default local RPC URL for the network.
func (n Network) Endpoint() (string, error) {
	endpoint, ok := defaultEndpoints[n]
	if !ok {
		return "", fmt.Errorf("unknown network %q", n)
	}
	return endpoint, nil
}
