package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ibrio-forkmaker/internal/clock"
	"github.com/goodnatureofminers/ibrio-forkmaker/internal/ibrio"
	"github.com/goodnatureofminers/ibrio-forkmaker/internal/model"
	"github.com/goodnatureofminers/ibrio-forkmaker/internal/pkg/jsonrpc"
)

// ProvisionerConfig tunes a ForkProvisioner. Zero values fall back to defaults.
type ProvisionerConfig struct {
	Passphrase   string
	FundAmount   int64
	PollInterval time.Duration
	// Progress is optional.
	Progress Progress
}

// ForkProvisioner creates a fork, funds it with its origin block and waits for
// the funding transaction to confirm.
type ForkProvisioner struct {
	logger     *zap.Logger
	client     NodeClient
	metrics    ProvisionerMetrics
	passphrase string
	fundAmount int64
	checker    ForkChecker
	resolver   PrevResolver
	waiter     ConfirmationWaiter
}

// NewForkProvisioner builds a ForkProvisioner with dependencies.
func NewForkProvisioner(
	client NodeClient,
	metrics ProvisionerMetrics,
	cfg ProvisionerConfig,
	logger *zap.Logger,
) (*ForkProvisioner, error) {
	if client == nil {
		return nil, errors.New("node client is required")
	}
	if metrics == nil {
		return nil, errors.New("provisioner metrics is required")
	}
	if cfg.Passphrase == "" {
		return nil, errors.New("passphrase is required")
	}
	if cfg.FundAmount <= 0 {
		cfg.FundAmount = defaultFundAmount
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}

	return &ForkProvisioner{
		logger:     logger,
		client:     client,
		metrics:    metrics,
		passphrase: cfg.Passphrase,
		fundAmount: cfg.FundAmount,
		checker:    &forkChecker{client: client},
		resolver:   &prevResolver{client: client},
		waiter: &confirmationWaiter{
			client:   client,
			metrics:  metrics,
			progress: cfg.Progress,
			sleep:    clock.SleepWithContext,
			interval: cfg.PollInterval,
			logger:   logger.Named("confirmationWaiter"),
		},
	}, nil
}

// Provision runs the workflow for req. Soft aborts (existing fork, failed
// funding) return a result with a nil error; every other failure is returned.
func (p *ForkProvisioner) Provision(ctx context.Context, req model.ForkRequest) (result model.ProvisionResult, err error) {
	logger := p.logger.With(
		zap.String("name", req.Name),
		zap.String("symbol", req.Symbol),
	)
	defer func() {
		if err == nil {
			p.metrics.ObserveOutcome(result.Status)
		}
	}()

	started := time.Now()
	existing, err := p.checker.Check(ctx, req.Name, req.Symbol)
	p.metrics.ObserveStep(stepCheckExists, err, started)
	if err != nil {
		return model.ProvisionResult{}, fmt.Errorf("check fork: %w", err)
	}
	if existing != nil {
		logger.Warn("fork exist",
			zap.String("forkid", existing.ID),
			zap.String("existing_name", existing.Name),
			zap.String("existing_symbol", existing.Symbol),
		)
		return model.ProvisionResult{
			Status:   model.ProvisionExists,
			ForkID:   existing.ID,
			Existing: existing,
		}, nil
	}

	started = time.Now()
	prev, err := p.resolver.Resolve(ctx, req.Prev)
	p.metrics.ObserveStep(stepResolvePrev, err, started)
	if err != nil {
		return model.ProvisionResult{}, fmt.Errorf("resolve prev block: %w", err)
	}
	logger.Info("prev block", zap.String("prev", prev))
	result = model.ProvisionResult{PrevBlock: prev}

	started = time.Now()
	origin, err := p.mint(ctx, prev, req)
	p.metrics.ObserveStep(stepMintOrigin, err, started)
	if err != nil {
		return model.ProvisionResult{}, fmt.Errorf("make origin: %w", err)
	}
	logger = logger.With(zap.String("forkid", origin.ForkID))
	logger.Info("makeorigin success")
	result.ForkID = origin.ForkID

	started = time.Now()
	address, err := p.client.AddForkTemplate(ctx, req.Owner, origin.ForkID)
	p.metrics.ObserveStep(stepRegisterTemplate, err, started)
	if err != nil {
		return model.ProvisionResult{}, fmt.Errorf("add fork template: %w", err)
	}
	result.Address = address

	started = time.Now()
	txid, err := p.fund(ctx, req.Owner, address, origin.Hex)
	p.metrics.ObserveStep(stepFund, err, started)
	if err != nil {
		if !refusedByNode(err) {
			return model.ProvisionResult{}, fmt.Errorf("fund fork: %w", err)
		}
		logger.Error("sendfrom error", zap.String("forkaddr", address), zap.Error(err))
		result.Status = model.ProvisionFundingFailed
		return result, nil
	}
	logger.Info("sendfrom success", zap.String("forkaddr", address), zap.String("txid", txid))
	result.TxID = txid

	started = time.Now()
	tx, err := p.waiter.Wait(ctx, txid)
	p.metrics.ObserveStep(stepConfirmWait, err, started)
	if err != nil {
		return model.ProvisionResult{}, fmt.Errorf("wait for confirmation: %w", err)
	}
	logger.Info("create fork success", zap.String("txid", txid), zap.String("blockhash", tx.BlockHash))

	result.Status = model.ProvisionCreated
	return result, nil
}

func (p *ForkProvisioner) mint(ctx context.Context, prev string, req model.ForkRequest) (model.Origin, error) {
	if err := p.unlock(ctx, req.Owner); err != nil {
		return model.Origin{}, err
	}
	return p.client.MakeOrigin(ctx, prev, req)
}

func (p *ForkProvisioner) fund(ctx context.Context, owner, address, data string) (string, error) {
	if err := p.unlock(ctx, owner); err != nil {
		return "", err
	}
	return p.client.SendFrom(ctx, ibrio.SendFromParams{
		From:   owner,
		To:     address,
		Amount: p.fundAmount,
		Data:   data,
	})
}

// unlock tolerates node-side refusals such as an already unlocked key; the call
// that needs the key reports the real failure.
func (p *ForkProvisioner) unlock(ctx context.Context, owner string) error {
	err := p.client.UnlockKey(ctx, owner, p.passphrase)
	if err == nil {
		return nil
	}
	if refusedByNode(err) {
		p.logger.Warn("unlockkey refused", zap.String("owner", owner), zap.Error(err))
		return nil
	}
	return fmt.Errorf("unlock key: %w", err)
}

// refusedByNode reports whether the node answered without a usable result, as
// opposed to a transport, decoding or cancellation failure.
func refusedByNode(err error) bool {
	return jsonrpc.IsRPCError(err) || errors.Is(err, jsonrpc.ErrEmptyResult)
}
