/*
Package relay moves value between HART ledgers deployed on different networks.

Relayer reads burn records of the origin ledger one by one and mints them on
the destination ledger acting as its minter. Progress is persisted per origin
network, so the relayer can be restarted at any time. Destination ledger
refuses duplicate mints, so replays after a crash are harmless.
*/
package relay

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/hart-contract/rpc/hart"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// BurnReader provides burn records of the origin ledger. It is implemented
// by [hart.ContractReader].
type BurnReader interface {
	NetworkID() (*big.Int, error)
	LastBurnID() (*big.Int, error)
	GetBurn(id *big.Int) (*hart.HartBurnRecord, error)
}

// MintWriter mints on the destination ledger. It is implemented by
// [hart.Contract].
type MintWriter interface {
	IsMinted(network *big.Int, id *big.Int) (bool, error)
	Mint(id *big.Int, burner util.Uint160, value *big.Int, details util.Uint256, network *big.Int) (util.Uint256, uint32, error)
}

// Waiter awaits transaction acceptance. It is implemented by
// [actor.Actor].
type Waiter interface {
	Wait(h util.Uint256, vub uint32, err error) (*state.AppExecResult, error)
}

// Prm groups Relayer parameters.
type Prm struct {
	// Writes relay progress into the log.
	Logger *zap.Logger

	Origin      BurnReader
	Destination MintWriter
	Waiter      Waiter
	Store       *Store

	// Optional registry for relayer metrics.
	Registerer prometheus.Registerer

	PollInterval time.Duration
	// Limits the number of burns relayed in one pass, 0 means no limit.
	BatchSize int
}

// Relayer copies burns of the origin ledger to the destination one.
type Relayer struct {
	log      *zap.Logger
	origin   BurnReader
	dst      MintWriter
	waiter   Waiter
	store    *Store
	metrics  *metrics
	interval time.Duration
	batch    int
}

// New creates Relayer from the given parameters.
func New(prm Prm) *Relayer {
	log := prm.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Relayer{
		log:      log,
		origin:   prm.Origin,
		dst:      prm.Destination,
		waiter:   prm.Waiter,
		store:    prm.Store,
		metrics:  newMetrics(prm.Registerer),
		interval: prm.PollInterval,
		batch:    prm.BatchSize,
	}
}

// Run synchronizes ledgers every poll interval until ctx is done. Failed
// passes are logged and retried on the next tick.
func (r *Relayer) Run(ctx context.Context) error {
	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		_, err := r.Sync(ctx)
		if err != nil && ctx.Err() == nil {
			r.log.Error("synchronization failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

// Sync relays burns made after the checkpoint and returns the number of
// processed records. It stops at the first failure keeping the checkpoint
// at the last processed record.
func (r *Relayer) Sync(ctx context.Context) (int, error) {
	bigNet, err := r.origin.NetworkID()
	if err != nil {
		return 0, fmt.Errorf("get origin network ID: %w", err)
	}
	network := bigNet.Int64()

	last, err := r.origin.LastBurnID()
	if err != nil {
		return 0, fmt.Errorf("get last burn ID: %w", err)
	}

	from, err := r.store.Checkpoint(network)
	if err != nil {
		return 0, fmt.Errorf("read checkpoint: %w", err)
	}

	var n int
	for id := from + 1; id <= last.Int64(); id++ {
		if r.batch > 0 && n >= r.batch {
			break
		}
		if err := ctx.Err(); err != nil {
			return n, err
		}

		err = r.relay(id)
		if err != nil {
			r.metrics.failed.Inc()
			return n, fmt.Errorf("relay burn %d: %w", id, err)
		}

		err = r.store.SetCheckpoint(network, id)
		if err != nil {
			return n, fmt.Errorf("save checkpoint: %w", err)
		}
		r.metrics.checkpoint.WithLabelValues(strconv.FormatInt(network, 10)).Set(float64(id))
		n++
	}

	if n > 0 {
		r.log.Info("ledgers synchronized", zap.Int64("network", network), zap.Int64("checkpoint", from+int64(n)))
	}

	return n, nil
}

func (r *Relayer) relay(id int64) error {
	rec, err := r.origin.GetBurn(big.NewInt(id))
	if err != nil {
		return fmt.Errorf("get burn: %w", err)
	}

	log := r.log.With(zap.Int64("id", id),
		zap.Stringer("network", rec.Network),
		zap.String("details", base58.Encode(rec.Details.BytesBE())))

	err = hart.VerifyBurn(rec)
	if err != nil {
		if errors.Is(err, hart.ErrDetailsMismatch) {
			log.Warn("burn details are not bound to the record, skipping")
			r.metrics.skipped.Inc()
			return nil
		}
		return err
	}

	minted, err := r.dst.IsMinted(rec.Network, rec.ID)
	if err != nil {
		return fmt.Errorf("check mint status: %w", err)
	}
	if minted {
		log.Debug("burn is already minted")
		r.metrics.skipped.Inc()
		return nil
	}

	res, err := r.waiter.Wait(r.dst.Mint(rec.ID, rec.Burner, rec.Value, rec.Details, rec.Network))
	if err != nil {
		return fmt.Errorf("send mint transaction: %w", err)
	}
	if res.VMState != vmstate.Halt {
		return fmt.Errorf("mint transaction %s failed: %s", res.Container.StringLE(), res.FaultException)
	}

	log.Info("burn relayed", zap.Stringer("tx", res.Container), zap.Stringer("value", rec.Value))
	r.metrics.relayed.Inc()

	return nil
}
