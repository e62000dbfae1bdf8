package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/ibrio-forkmaker/internal/ibrio"
	"github.com/goodnatureofminers/ibrio-forkmaker/internal/metrics"
	"github.com/goodnatureofminers/ibrio-forkmaker/internal/model"
	"github.com/goodnatureofminers/ibrio-forkmaker/internal/pkg/jsonrpc"
	"github.com/goodnatureofminers/ibrio-forkmaker/internal/service"
)

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("create fork failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	endpoint, err := cfg.endpoint()
	if err != nil {
		return err
	}
	rpc, err := jsonrpc.NewClient(jsonrpc.Config{
		Endpoint:  endpoint,
		Debug:     cfg.Debug,
		Timeout:   cfg.HTTPTimeout,
		RateLimit: cfg.RateLimit,
	}, logger.Named("jsonrpc"))
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	node := ibrio.NewRPCClient(rpc, metrics.NewRPCClient(cfg.Network))

	provisionerCfg := service.ProvisionerConfig{
		Passphrase:   cfg.Passphrase,
		FundAmount:   cfg.FundAmount,
		PollInterval: cfg.PollInterval,
	}
	if !cfg.NoProgress {
		provisionerCfg.Progress = newSpinner()
	}
	svc, err := service.NewForkProvisioner(
		node,
		metrics.NewProvisioner(cfg.Network),
		provisionerCfg,
		logger.Named("forkProvisioner"),
	)
	if err != nil {
		return err
	}

	logger.Info("create fork",
		zap.String("endpoint", endpoint),
		zap.String("name", cfg.Args.Name),
		zap.String("symbol", cfg.Args.Symbol),
	)
	result, err := svc.Provision(ctx, cfg.forkRequest())
	if err != nil {
		return err
	}

	switch result.Status {
	case model.ProvisionCreated:
		logger.Info("fork created", zap.String("forkid", result.ForkID), zap.String("txid", result.TxID))
	case model.ProvisionExists:
		logger.Warn("fork not created, name or symbol taken", zap.String("forkid", result.ForkID))
	case model.ProvisionFundingFailed:
		logger.Warn("fork origin made but not funded",
			zap.String("forkid", result.ForkID),
			zap.String("forkaddr", result.Address),
		)
	}
	return nil
}

func newSpinner() *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("waiting for funding transaction"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
