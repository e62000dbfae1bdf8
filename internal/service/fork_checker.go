package service

import (
	"context"

	"github.com/goodnatureofminers/ibrio-forkmaker/internal/model"
)

type forkChecker struct {
	client NodeClient
}

// Check returns the first known fork whose name or symbol matches, or nil.
// The scan reflects the node's current view only; a concurrent creator may still race.
func (c *forkChecker) Check(ctx context.Context, name, symbol string) (*model.Fork, error) {
	forks, err := c.client.ListFork(ctx)
	if err != nil {
		return nil, err
	}
	for i := range forks {
		if forks[i].Collides(name, symbol) {
			return &forks[i], nil
		}
	}
	return nil, nil
}
