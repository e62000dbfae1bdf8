package model

// ProvisionStatus is the terminal state of a provisioning run.
type ProvisionStatus string

var (
	// ProvisionCreated means the fork was minted, funded and the funding tx confirmed.
	ProvisionCreated ProvisionStatus = "created"
	// ProvisionExists means a fork with the same name or symbol was already present.
	ProvisionExists ProvisionStatus = "exists"
	// ProvisionFundingFailed means the origin was minted but the funding tx was not sent.
	ProvisionFundingFailed ProvisionStatus = "funding_failed"
)

// ProvisionResult summarizes a provisioning run.
type ProvisionResult struct {
	Status    ProvisionStatus
	ForkID    string
	PrevBlock string
	Address   string
	TxID      string
	// Existing is the colliding fork when Status is ProvisionExists.
	Existing *Fork
}
