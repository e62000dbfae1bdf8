package ibrio

type unlockKeyParams struct {
	PubKey     string `json:"pubkey"`
	Passphrase string `json:"passphrase"`
}

// SendFromParams describes a sendfrom transfer.
type SendFromParams struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
	// Data is hex payload attached to the transaction.
	Data string `json:"data,omitempty"`
}

type makeOriginParams struct {
	Prev       string      `json:"prev"`
	Owner      string      `json:"owner"`
	Amount     int64       `json:"amount"`
	Name       string      `json:"name"`
	Symbol     string      `json:"symbol"`
	Reward     int64       `json:"reward"`
	HalveCycle uint32      `json:"halvecycle"`
	ForkType   *string     `json:"forktype"`
	DeFi       *defiParams `json:"defi"`
}

type defiParams struct {
	MintHeight             int64  `json:"mintheight"`
	MaxSupply              int64  `json:"maxsupply"`
	CoinbaseType           int64  `json:"coinbasetype"`
	DecayCycle             int64  `json:"decaycycle"`
	CoinbaseDecayPercent   uint32 `json:"coinbasedecaypercent"`
	InitCoinbasePercent    uint32 `json:"initcoinbasepercent"`
	RewardCycle            int64  `json:"rewardcycle"`
	SupplyCycle            int64  `json:"supplycycle"`
	StakeRewardPercent     uint32 `json:"stakerewardpercent"`
	PromotionRewardPercent uint32 `json:"promotionrewardpercent"`
	StakeMinToken          uint64 `json:"stakemintoken"`
}

type makeOriginResult struct {
	Hash string `json:"hash"`
	Hex  string `json:"hex"`
}

type forkTemplate struct {
	Redeem string `json:"redeem"`
	Fork   string `json:"fork"`
}

type addNewTemplateParams struct {
	Type string       `json:"type"`
	Fork forkTemplate `json:"fork"`
}

type getForkHeightParams struct {
	Fork *string `json:"fork"`
}

type getBlockHashParams struct {
	Height int64   `json:"height"`
	Fork   *string `json:"fork"`
}

type getTransactionParams struct {
	TxID string `json:"txid"`
}

type getTransactionResult struct {
	Transaction transactionResult `json:"transaction"`
}

type transactionResult struct {
	TxID          string  `json:"txid"`
	Version       int64   `json:"version"`
	Type          string  `json:"type"`
	Time          int64   `json:"time"`
	LockUntil     int64   `json:"lockuntil"`
	BlockHash     string  `json:"blockhash"`
	SendFrom      string  `json:"sendfrom"`
	SendTo        string  `json:"sendto"`
	Amount        float64 `json:"amount"`
	TxFee         float64 `json:"txfee"`
	Data          string  `json:"data"`
	Sig           string  `json:"sig"`
	Fork          string  `json:"fork"`
	Confirmations int64   `json:"confirmations"`
}

type forkProfileResult struct {
	Fork             string  `json:"fork"`
	Name             string  `json:"name"`
	Symbol           string  `json:"symbol"`
	Amount           float64 `json:"amount"`
	Reward           float64 `json:"reward"`
	HalveCycle       uint64  `json:"halvecycle"`
	Isolated         bool    `json:"isolated"`
	Private          bool    `json:"private"`
	Enclosed         bool    `json:"enclosed"`
	Owner            string  `json:"owner"`
	CreateTxID       string  `json:"createtxid"`
	CreateForkHeight int64   `json:"createforkheight"`
	ParentFork       string  `json:"parentfork"`
	ForkType         string  `json:"forktype"`
	ForkHeight       int64   `json:"forkheight"`
	LastBlock        string  `json:"lastblock"`
	MoneySupply      float64 `json:"moneysupply"`
	MoneyDestroy     float64 `json:"moneydestroy"`
}
