package model

// Transaction is the subset of node transaction data the provisioner tracks.
type Transaction struct {
	TxID          string
	Fork          string
	Type          string
	SendFrom      string
	SendTo        string
	Amount        float64
	TxFee         float64
	BlockHash     string
	Confirmations int64
}

// Confirmed reports whether the transaction has been included in a block.
func (t Transaction) Confirmed() bool {
	return t.BlockHash != ""
}
