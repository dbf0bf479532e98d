package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nspcc-dev/hart-contract/common"
	"github.com/nspcc-dev/hart-contract/relay"
	"github.com/nspcc-dev/hart-contract/rpc/hart"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	app := cli.NewApp()
	app.Name = "hart-relay"
	app.Usage = "Mint HART burns of the origin network on the destination one"
	app.Version = fmt.Sprintf("%d.%d.%d", common.Version/1_000_000, common.Version/1_000%1_000, common.Version%1_000)
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "Path to the YAML configuration file (values can be overridden by " + relay.EnvPrefix + "* variables)",
		},
	}
	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg, err := relay.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	acc, err := openAccount(cfg.Wallet)
	if err != nil {
		return err
	}

	origin, err := dial(ctx, cfg.Origin.RPC)
	if err != nil {
		return fmt.Errorf("origin: %w", err)
	}
	defer origin.Close()

	dst, err := dial(ctx, cfg.Destination.RPC)
	if err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	defer dst.Close()

	act, err := actor.NewSimple(dst, acc)
	if err != nil {
		return fmt.Errorf("init destination actor: %w", err)
	}

	// Validated by LoadConfig.
	originHash, _ := relay.ParseContract(cfg.Origin.Contract)
	dstHash, _ := relay.ParseContract(cfg.Destination.Contract)

	store, err := relay.OpenStore(cfg.Checkpoint)
	if err != nil {
		return err
	}
	defer store.Close()

	reg := prometheus.NewRegistry()
	if cfg.Metrics != "" {
		srv := serveMetrics(logger, cfg.Metrics, reg)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	r := relay.New(relay.Prm{
		Logger:       logger,
		Origin:       hart.NewReader(invoker.New(origin, nil), originHash),
		Destination:  hart.New(act, dstHash),
		Waiter:       act,
		Store:        store,
		Registerer:   reg,
		PollInterval: cfg.PollInterval,
		BatchSize:    cfg.BatchSize,
	})

	logger.Info("relay started",
		zap.String("origin", cfg.Origin.RPC),
		zap.String("destination", cfg.Destination.RPC),
		zap.String("minter", acc.Address))

	err = r.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("relay stopped")
		return nil
	}

	return err
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	c := zap.NewProductionConfig()
	c.Level = lvl
	c.Encoding = "console"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := c.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return l, nil
}

func dial(ctx context.Context, endpoint string) (*rpcclient.Client, error) {
	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	return c, nil
}

// openAccount opens the wallet and decrypts the configured account, the first
// one if no address is specified.
func openAccount(cfg relay.Wallet) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer w.Close()

	var acc *wallet.Account
	if cfg.Address != "" {
		h, err := address.StringToUint160(cfg.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid wallet address: %w", err)
		}
		acc = w.GetAccount(h)
		if acc == nil {
			return nil, fmt.Errorf("account %s not found in the wallet", cfg.Address)
		}
	} else {
		if len(w.Accounts) == 0 {
			return nil, errors.New("wallet has no accounts")
		}
		acc = w.Accounts[0]
	}

	err = acc.Decrypt(cfg.Password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}

func serveMetrics(logger *zap.Logger, addr string, reg *prometheus.Registry) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failure", zap.Error(err))
		}
	}()

	return srv
}
