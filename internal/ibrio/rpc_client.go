// Package ibrio exposes the ibrio node RPC methods used for fork provisioning.
package ibrio

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ibrio-forkmaker/internal/model"
	"github.com/goodnatureofminers/ibrio-forkmaker/internal/pkg/jsonrpc"
)

const templateTypeFork = "fork"

// RPCClient wraps a JSON-RPC caller with typed methods and metrics instrumentation.
type RPCClient struct {
	client     Caller
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented RPC client.
func NewRPCClient(client Caller, rpcMetrics RPCMetrics) *RPCClient {
	return &RPCClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// UnlockKey unlocks the signing key for pubkey.
func (r *RPCClient) UnlockKey(ctx context.Context, pubkey, passphrase string) (err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("unlock_key", err, started)
	}()
	return r.client.Call(ctx, "unlockkey", unlockKeyParams{
		PubKey:     pubkey,
		Passphrase: passphrase,
	}, nil)
}

// SendFrom submits a transfer and returns its txid.
func (r *RPCClient) SendFrom(ctx context.Context, params SendFromParams) (txid string, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("send_from", err, started)
	}()
	if err = r.client.Call(ctx, "sendfrom", params, &txid); err != nil {
		return "", err
	}
	if txid == "" {
		return "", fmt.Errorf("sendfrom txid: %w", jsonrpc.ErrEmptyResult)
	}
	return txid, nil
}

// MakeOrigin mints the origin block of a new fork on top of prev.
func (r *RPCClient) MakeOrigin(ctx context.Context, prev string, req model.ForkRequest) (origin model.Origin, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("make_origin", err, started)
	}()
	var res makeOriginResult
	if err = r.client.Call(ctx, "makeorigin", buildMakeOriginParams(prev, req), &res); err != nil {
		return model.Origin{}, err
	}
	if res.Hash == "" {
		return model.Origin{}, fmt.Errorf("makeorigin hash: %w", jsonrpc.ErrEmptyResult)
	}
	return model.Origin{ForkID: res.Hash, Hex: res.Hex}, nil
}

// AddForkTemplate registers a fork template spendable by redeem and returns its address.
func (r *RPCClient) AddForkTemplate(ctx context.Context, redeem, fork string) (address string, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("add_new_template", err, started)
	}()
	err = r.client.Call(ctx, "addnewtemplate", addNewTemplateParams{
		Type: templateTypeFork,
		Fork: forkTemplate{Redeem: redeem, Fork: fork},
	}, &address)
	if err != nil {
		return "", err
	}
	if address == "" {
		return "", fmt.Errorf("addnewtemplate address: %w", jsonrpc.ErrEmptyResult)
	}
	return address, nil
}

// GetForkHeight returns the height of fork. An empty fork means the primary chain.
func (r *RPCClient) GetForkHeight(ctx context.Context, fork string) (height int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_fork_height", err, started)
	}()
	if err = r.client.Call(ctx, "getforkheight", getForkHeightParams{Fork: optionalFork(fork)}, &height); err != nil {
		return 0, err
	}
	return height, nil
}

// GetBlockHash returns the block hashes at height on fork.
func (r *RPCClient) GetBlockHash(ctx context.Context, height int64, fork string) (hashes []string, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	err = r.client.Call(ctx, "getblockhash", getBlockHashParams{
		Height: height,
		Fork:   optionalFork(fork),
	}, &hashes)
	if err != nil {
		return nil, err
	}
	return hashes, nil
}

// GetTransaction returns the transaction with txid.
func (r *RPCClient) GetTransaction(ctx context.Context, txid string) (tx model.Transaction, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_transaction", err, started)
	}()
	var res getTransactionResult
	if err = r.client.Call(ctx, "gettransaction", getTransactionParams{TxID: txid}, &res); err != nil {
		return model.Transaction{}, err
	}
	if res.Transaction.TxID != "" && res.Transaction.TxID != txid {
		return model.Transaction{}, fmt.Errorf("gettransaction returned txid %s, want %s", res.Transaction.TxID, txid)
	}
	return convertTransaction(res.Transaction), nil
}

// ListFork returns the forks known to the node.
func (r *RPCClient) ListFork(ctx context.Context) (forks []model.Fork, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("list_fork", err, started)
	}()
	var res []forkProfileResult
	if err = r.client.Call(ctx, "listfork", struct{}{}, &res); err != nil {
		return nil, err
	}
	forks = make([]model.Fork, 0, len(res))
	for _, f := range res {
		var fork model.Fork
		if fork, err = convertFork(f); err != nil {
			return nil, err
		}
		forks = append(forks, fork)
	}
	return forks, nil
}
