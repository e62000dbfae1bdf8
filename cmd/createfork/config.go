package main

import (
	"time"

	"github.com/goodnatureofminers/ibrio-forkmaker/internal/model"
)

type forkArgs struct {
	Prev       string `positional-arg-name:"PREV" description:"previous block hash, or \"height\" for the block below the primary chain tip"`
	Owner      string `positional-arg-name:"OWNER" description:"owner public key"`
	Amount     int64  `positional-arg-name:"AMOUNT" description:"initial fork amount"`
	Name       string `positional-arg-name:"NAME" description:"fork name"`
	Symbol     string `positional-arg-name:"SYMBOL" description:"fork symbol"`
	Reward     int64  `positional-arg-name:"REWARD" description:"block reward"`
	HalveCycle uint32 `positional-arg-name:"HALVECYCLE" description:"reward halving cycle in blocks"`
}

type defiOptions struct {
	MintHeight             int64  `long:"defi-mint-height" env:"CREATEFORK_DEFI_MINT_HEIGHT" description:"height at which minting starts, -1 for fork genesis" default:"-1"`
	MaxSupply              int64  `long:"defi-max-supply" env:"CREATEFORK_DEFI_MAX_SUPPLY" description:"maximum supply, -1 for unlimited" default:"-1"`
	CoinbaseType           int64  `long:"defi-coinbase-type" env:"CREATEFORK_DEFI_COINBASE_TYPE" description:"0 fixed decay, 1 specific schedule" default:"0"`
	DecayCycle             int64  `long:"defi-decay-cycle" env:"CREATEFORK_DEFI_DECAY_CYCLE" description:"coinbase decay cycle in blocks" default:"1036800"`
	CoinbaseDecayPercent   uint32 `long:"defi-coinbase-decay-percent" env:"CREATEFORK_DEFI_COINBASE_DECAY_PERCENT" description:"coinbase percent kept after each decay cycle" default:"50"`
	InitCoinbasePercent    uint32 `long:"defi-init-coinbase-percent" env:"CREATEFORK_DEFI_INIT_COINBASE_PERCENT" description:"initial coinbase increase percent per supply cycle" default:"10"`
	RewardCycle            int64  `long:"defi-reward-cycle" env:"CREATEFORK_DEFI_REWARD_CYCLE" description:"reward distribution cycle in blocks" default:"1440"`
	SupplyCycle            int64  `long:"defi-supply-cycle" env:"CREATEFORK_DEFI_SUPPLY_CYCLE" description:"supply change cycle in blocks" default:"43200"`
	StakeRewardPercent     uint32 `long:"defi-stake-reward-percent" env:"CREATEFORK_DEFI_STAKE_REWARD_PERCENT" description:"share of reward paid for stake" default:"50"`
	PromotionRewardPercent uint32 `long:"defi-promotion-reward-percent" env:"CREATEFORK_DEFI_PROMOTION_REWARD_PERCENT" description:"share of reward paid for promotion" default:"50"`
	StakeMinToken          uint64 `long:"defi-stake-min-token" env:"CREATEFORK_DEFI_STAKE_MIN_TOKEN" description:"minimum balance that earns stake reward" default:"100"`
}

type config struct {
	Network      model.Network  `long:"network" env:"CREATEFORK_NETWORK" description:"network whose default endpoint is used" choice:"mainnet" choice:"testnet" default:"testnet"`
	RPCURL       string         `long:"rpc-url" env:"CREATEFORK_RPC_URL" description:"node RPC URL, overrides the network default"`
	Debug        bool           `long:"debug" env:"CREATEFORK_DEBUG" description:"log RPC request and response bodies"`
	Passphrase   string         `long:"passphrase" env:"CREATEFORK_PASSPHRASE" description:"owner key passphrase" default:"123"`
	FundAmount   int64          `long:"fund-amount" env:"CREATEFORK_FUND_AMOUNT" description:"amount sent to the fork template address" default:"10000"`
	PollInterval time.Duration  `long:"poll-interval" env:"CREATEFORK_POLL_INTERVAL" description:"funding transaction poll interval" default:"1s"`
	HTTPTimeout  time.Duration  `long:"http-timeout" env:"CREATEFORK_HTTP_TIMEOUT" description:"HTTP timeout for RPC requests, 0 disables" default:"0s"`
	RateLimit    int            `long:"rate-limit" env:"CREATEFORK_RATE_LIMIT" description:"max RPC requests per second, 0 for unlimited" default:"0"`
	ForkType     model.ForkType `long:"fork-type" env:"CREATEFORK_FORK_TYPE" description:"fork type sent to makeorigin" choice:"common" choice:"defi"`
	MetricsAddr  string         `long:"metrics-addr" env:"CREATEFORK_METRICS_ADDR" description:"address for metrics server, empty disables it"`
	NoProgress   bool           `long:"no-progress" env:"CREATEFORK_NO_PROGRESS" description:"disable the confirmation spinner"`

	DeFi defiOptions `group:"DeFi Options"`
	Args forkArgs    `positional-args:"yes" required:"yes"`
}

func (c config) endpoint() (string, error) {
	if c.RPCURL != "" {
		return c.RPCURL, nil
	}
	return c.Network.Endpoint()
}

// forkRequest leaves ForkType and DeFi unset unless --fork-type is given, so
// makeorigin receives null for both and the node applies its own defaults.
func (c config) forkRequest() model.ForkRequest {
	req := model.ForkRequest{
		Prev:       c.Args.Prev,
		Owner:      c.Args.Owner,
		Amount:     c.Args.Amount,
		Name:       c.Args.Name,
		Symbol:     c.Args.Symbol,
		Reward:     c.Args.Reward,
		HalveCycle: c.Args.HalveCycle,
		ForkType:   c.ForkType,
	}
	if c.ForkType == model.ForkDeFi {
		req.DeFi = &model.DeFiParams{
			MintHeight:             c.DeFi.MintHeight,
			MaxSupply:              c.DeFi.MaxSupply,
			CoinbaseType:           c.DeFi.CoinbaseType,
			DecayCycle:             c.DeFi.DecayCycle,
			CoinbaseDecayPercent:   c.DeFi.CoinbaseDecayPercent,
			InitCoinbasePercent:    c.DeFi.InitCoinbasePercent,
			RewardCycle:            c.DeFi.RewardCycle,
			SupplyCycle:            c.DeFi.SupplyCycle,
			StakeRewardPercent:     c.DeFi.StakeRewardPercent,
			PromotionRewardPercent: c.DeFi.PromotionRewardPercent,
			StakeMinToken:          c.DeFi.StakeMinToken,
		}
	}
	return req
}
