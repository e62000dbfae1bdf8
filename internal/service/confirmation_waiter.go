package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ibrio-forkmaker/internal/clock"
	"github.com/goodnatureofminers/ibrio-forkmaker/internal/model"
)

type confirmationWaiter struct {
	client   NodeClient
	metrics  ProvisionerMetrics
	progress Progress
	sleep    clock.SleepFunc
	interval time.Duration
	logger   *zap.Logger
}

// Wait polls the transaction until it is included in a block. There is no attempt
// limit; only ctx ends an unconfirmed wait.
func (w *confirmationWaiter) Wait(ctx context.Context, txid string) (model.Transaction, error) {
	var confirmed model.Transaction
	err := clock.Poll(ctx, w.interval, w.sleep, func(ctx context.Context, attempt int) (bool, error) {
		tx, err := w.client.GetTransaction(ctx, txid)
		if err != nil {
			return false, fmt.Errorf("get transaction %s: %w", txid, err)
		}
		w.metrics.ObservePoll(tx.Confirmed())
		if !tx.Confirmed() {
			w.logger.Debug("wait......", zap.String("txid", txid), zap.Int("attempt", attempt))
			w.tick()
			return false, nil
		}
		confirmed = tx
		return true, nil
	})
	w.finish()
	if err != nil {
		return model.Transaction{}, err
	}
	return confirmed, nil
}

func (w *confirmationWaiter) tick() {
	if w.progress == nil {
		return
	}
	if err := w.progress.Add(1); err != nil {
		w.logger.Warn("failed to update progress", zap.Error(err))
	}
}

func (w *confirmationWaiter) finish() {
	if w.progress == nil {
		return
	}
	if err := w.progress.Finish(); err != nil {
		w.logger.Warn("failed to finish progress", zap.Error(err))
	}
}
