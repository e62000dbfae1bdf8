package ibrio

import (
	"fmt"

	"github.com/goodnatureofminers/ibrio-forkmaker/internal/model"
	"github.com/goodnatureofminers/ibrio-forkmaker/pkg/safe"
)

func buildMakeOriginParams(prev string, req model.ForkRequest) makeOriginParams {
	params := makeOriginParams{
		Prev:       prev,
		Owner:      req.Owner,
		Amount:     req.Amount,
		Name:       req.Name,
		Symbol:     req.Symbol,
		Reward:     req.Reward,
		HalveCycle: req.HalveCycle,
	}
	if req.ForkType != "" {
		forkType := string(req.ForkType)
		params.ForkType = &forkType
	}
	if d := req.DeFi; d != nil {
		params.DeFi = &defiParams{
			MintHeight:             d.MintHeight,
			MaxSupply:              d.MaxSupply,
			CoinbaseType:           d.CoinbaseType,
			DecayCycle:             d.DecayCycle,
			CoinbaseDecayPercent:   d.CoinbaseDecayPercent,
			InitCoinbasePercent:    d.InitCoinbasePercent,
			RewardCycle:            d.RewardCycle,
			SupplyCycle:            d.SupplyCycle,
			StakeRewardPercent:     d.StakeRewardPercent,
			PromotionRewardPercent: d.PromotionRewardPercent,
			StakeMinToken:          d.StakeMinToken,
		}
	}
	return params
}

func convertFork(src forkProfileResult) (model.Fork, error) {
	halveCycle, err := safe.Uint32(src.HalveCycle)
	if err != nil {
		return model.Fork{}, fmt.Errorf("fork %s halvecycle: %w", src.Fork, err)
	}
	return model.Fork{
		ID:         src.Fork,
		Name:       src.Name,
		Symbol:     src.Symbol,
		Owner:      src.Owner,
		ForkType:   model.ForkType(src.ForkType),
		Amount:     src.Amount,
		Reward:     src.Reward,
		HalveCycle: halveCycle,
		Height:     src.ForkHeight,
		Parent:     src.ParentFork,
		CreateTxID: src.CreateTxID,
	}, nil
}

func convertTransaction(src transactionResult) model.Transaction {
	return model.Transaction{
		TxID:          src.TxID,
		Fork:          src.Fork,
		Type:          src.Type,
		SendFrom:      src.SendFrom,
		SendTo:        src.SendTo,
		Amount:        src.Amount,
		TxFee:         src.TxFee,
		BlockHash:     src.BlockHash,
		Confirmations: src.Confirmations,
	}
}

// optionalFork maps the empty fork to JSON null, which the node reads as the primary fork.
func optionalFork(fork string) *string {
	if fork == "" {
		return nil
	}
	return &fork
}
