package service

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/ibrio-forkmaker/internal/model"
)

type prevResolver struct {
	client NodeClient
}

// Resolve returns prev unchanged when it is a block hash. For model.PrevFromHeight
// it returns the first block hash at primary chain height minus one.
func (r *prevResolver) Resolve(ctx context.Context, prev string) (string, error) {
	if prev != model.PrevFromHeight {
		if len(prev) != chainhash.MaxHashStringSize {
			return "", fmt.Errorf("prev block %q: want %d hex characters", prev, chainhash.MaxHashStringSize)
		}
		if _, err := chainhash.NewHashFromStr(prev); err != nil {
			return "", fmt.Errorf("prev block %q: %w", prev, err)
		}
		return prev, nil
	}

	height, err := r.client.GetForkHeight(ctx, "")
	if err != nil {
		return "", fmt.Errorf("get fork height: %w", err)
	}
	if height < 1 {
		return "", fmt.Errorf("fork height %d has no previous block", height)
	}

	hashes, err := r.client.GetBlockHash(ctx, height-1, "")
	if err != nil {
		return "", fmt.Errorf("get block hash at height %d: %w", height-1, err)
	}
	if len(hashes) == 0 {
		return "", fmt.Errorf("no block hash at height %d", height-1)
	}
	return hashes[0], nil
}
