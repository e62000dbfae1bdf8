package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/ibrio-forkmaker/internal/ibrio"
	"github.com/goodnatureofminers/ibrio-forkmaker/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	NodeClient interface {
		UnlockKey(ctx context.Context, pubkey, passphrase string) error
		SendFrom(ctx context.Context, params ibrio.SendFromParams) (string, error)
		MakeOrigin(ctx context.Context, prev string, req model.ForkRequest) (model.Origin, error)
		AddForkTemplate(ctx context.Context, redeem, fork string) (string, error)
		GetForkHeight(ctx context.Context, fork string) (int64, error)
		GetBlockHash(ctx context.Context, height int64, fork string) ([]string, error)
		GetTransaction(ctx context.Context, txid string) (model.Transaction, error)
		ListFork(ctx context.Context) ([]model.Fork, error)
	}
	ProvisionerMetrics interface {
		ObserveStep(step string, err error, started time.Time)
		ObservePoll(confirmed bool)
		ObserveOutcome(status model.ProvisionStatus)
	}
	// Progress is ticked while the funding transaction is pending.
	Progress interface {
		Add(num int) error
		Finish() error
	}

	ForkChecker interface {
		Check(ctx context.Context, name, symbol string) (*model.Fork, error)
	}
	PrevResolver interface {
		Resolve(ctx context.Context, prev string) (string, error)
	}
	ConfirmationWaiter interface {
		Wait(ctx context.Context, txid string) (model.Transaction, error)
	}
)
