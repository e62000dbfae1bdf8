package model

// PrevFromHeight asks for the previous block to be resolved from the current
// primary chain height instead of a literal block hash.
const PrevFromHeight = "height"

// ForkType selects the minting model of a new fork.
type ForkType string

var (
	ForkCommon ForkType = "common"
	ForkDeFi   ForkType = "defi"
)

// DeFiParams holds the minting schedule of a defi fork. The node rejects them
// for common forks and requires Reward and HalveCycle to be zero.
type DeFiParams struct {
	MintHeight             int64
	MaxSupply              int64
	CoinbaseType           int64
	DecayCycle             int64
	CoinbaseDecayPercent   uint32
	InitCoinbasePercent    uint32
	RewardCycle            int64
	SupplyCycle            int64
	StakeRewardPercent     uint32
	PromotionRewardPercent uint32
	StakeMinToken          uint64
}

// ForkRequest describes the fork to create. Fields are validated by the node.
type ForkRequest struct {
	// Prev is a block hash or PrevFromHeight.
	Prev       string
	Owner      string
	Amount     int64
	Name       string
	Symbol     string
	Reward     int64
	HalveCycle uint32
	ForkType   ForkType
	DeFi       *DeFiParams
}

// Fork is an existing fork as reported by the node.
type Fork struct {
	ID         string
	Name       string
	Symbol     string
	Owner      string
	ForkType   ForkType
	Amount     float64
	Reward     float64
	HalveCycle uint32
	Height     int64
	Parent     string
	CreateTxID string
}

// Collides reports whether creating a fork with name or symbol would clash with f.
func (f Fork) Collides(name, symbol string) bool {
	return f.Name == name || f.Symbol == symbol
}

// Origin is the genesis block minted for a new fork.
type Origin struct {
	ForkID string
	// Hex is the serialized origin block carried by the funding transaction.
	Hex string
}
