package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/escrowwatch/internal/conditionwatch"
	"github.com/gabapcia/escrowwatch/internal/config"
	"github.com/gabapcia/escrowwatch/internal/handlers/api"
	"github.com/gabapcia/escrowwatch/internal/handlers/cli"
	"github.com/gabapcia/escrowwatch/internal/infra/blockchain/escrow"
	"github.com/gabapcia/escrowwatch/internal/infra/storage/redis"
	"github.com/gabapcia/escrowwatch/internal/infra/verifier/rest"
	"github.com/gabapcia/escrowwatch/internal/pkg/logger"
	"github.com/gabapcia/escrowwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/escrowwatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/escrowwatch/internal/pkg/transport/http"
	"github.com/gabapcia/escrowwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/escrowwatch/internal/pkg/validator"
	"github.com/gabapcia/escrowwatch/internal/release"
	"github.com/gabapcia/escrowwatch/internal/verification"

	"github.com/hashicorp/go-retryablehttp"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
		defer shutdown(context.WithoutCancel(ctx))
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	validator.Init()

	evaluator := verification.New(newProviders(cfg), evaluatorOptions(cfg)...)

	releaseOpts := []release.Option{
		release.WithTimeout(cfg.Release.Timeout),
		release.WithClaimTTL(cfg.Release.ClaimTTL),
	}
	if cfg.Release.RetryAttempts > 1 {
		releaseOpts = append(releaseOpts, release.WithRetry(retry.New(
			retry.WithAttempts(cfg.Release.RetryAttempts),
			retry.WithDelay(cfg.Release.RetryDelay),
			retry.WithMaxDelay(cfg.Release.RetryMaxDelay),
			retry.WithOnRetry(func(n uint, err error) {
				logger.Warn(ctx, "release attempt failed", "attempt", n+1, "error", err)
			}),
		)))
	}

	monitorOpts := []conditionwatch.Option{
		conditionwatch.WithMaxWatches(cfg.MaxWatches),
		conditionwatch.WithDefaultPollInterval(cfg.PollingInterval),
	}

	if cfg.Redis.Enabled() {
		store, err := redis.NewClient(ctx,
			cfg.Redis.Addr,
			cfg.Redis.Username,
			cfg.Redis.Password,
			cfg.Redis.DB,
			redis.WithOutcomeTTL(cfg.Redis.OutcomeTTL),
		)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer store.Close()

		releaseOpts = append(releaseOpts, release.WithGuard(store))
		monitorOpts = append(monitorOpts, conditionwatch.WithOutcomeStorage(store))
	}

	rpc := jsonrpc.NewClient(cfg.Release.RPCURL, transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.Release.Timeout),
		transporthttp.WithRetryMax(0),
		transporthttp.WithPassthroughErrors(),
	))
	trigger := release.New(escrow.NewClient(rpc, cfg.Release.ContractAddress), releaseOpts...)

	monitor := conditionwatch.New(evaluator, trigger, monitorOpts...)

	return cli.Run(ctx, monitor, api.NewServer(cfg.HTTPAddr, monitor))
}

// newProviders builds a REST client for every provider with an endpoint.
// Conditions of a kind without a provider fail their watch.
func newProviders(cfg config.Config) verification.Providers {
	httpClient := func() *retryablehttp.Client {
		return transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.ProviderTimeout),
			transporthttp.WithRetryMax(0),
			transporthttp.WithPassthroughErrors(),
		)
	}

	var providers verification.Providers
	if p := cfg.Shipping; p.Configured() {
		providers.Shipment = rest.NewClient(p.BaseURL, p.APIKey, httpClient())
	}
	if p := cfg.Document; p.Configured() {
		providers.Document = rest.NewClient(p.BaseURL, p.APIKey, httpClient())
	}
	if p := cfg.Email; p.Configured() {
		providers.Email = rest.NewClient(p.BaseURL, p.APIKey, httpClient())
	}
	if p := cfg.Oracle; p.Configured() {
		providers.Oracle = rest.NewClient(p.BaseURL, p.APIKey, httpClient())
	}

	return providers
}

func evaluatorOptions(cfg config.Config) []verification.Option {
	opts := []verification.Option{verification.WithCallTimeout(cfg.ProviderTimeout)}

	for kind, p := range map[verification.Kind]config.Provider{
		verification.KindShipment: cfg.Shipping,
		verification.KindDocument: cfg.Document,
		verification.KindEmail:    cfg.Email,
		verification.KindOracle:   cfg.Oracle,
	} {
		opts = append(opts, verification.WithRateLimit(kind, p.Limit(), p.RateBurst))
	}

	return opts
}
