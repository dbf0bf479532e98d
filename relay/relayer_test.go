package relay

import (
	"context"
	"errors"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/hart-contract/rpc/hart"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testNetwork = 2

type testOrigin struct {
	burns []*hart.HartBurnRecord
}

func (o *testOrigin) NetworkID() (*big.Int, error) {
	return big.NewInt(testNetwork), nil
}

func (o *testOrigin) LastBurnID() (*big.Int, error) {
	return big.NewInt(int64(len(o.burns))), nil
}

func (o *testOrigin) GetBurn(id *big.Int) (*hart.HartBurnRecord, error) {
	i := id.Int64()
	if i < 1 || i > int64(len(o.burns)) {
		return nil, errors.New("burn not found")
	}
	return o.burns[i-1], nil
}

func (o *testOrigin) burn(t *testing.T, burner util.Uint160, value int64, data string) *hart.HartBurnRecord {
	rec := &hart.HartBurnRecord{
		ID:      big.NewInt(int64(len(o.burns) + 1)),
		Burner:  burner,
		Value:   big.NewInt(value),
		Data:    data,
		Network: big.NewInt(testNetwork),
	}

	var err error
	rec.Details, err = hart.DetailHash(rec.ID, rec.Burner, rec.Value, rec.Data, rec.Network)
	require.NoError(t, err)

	o.burns = append(o.burns, rec)
	return rec
}

type mintCall struct {
	id      int64
	burner  util.Uint160
	value   int64
	details util.Uint256
	network int64
}

type testDestination struct {
	minted map[[2]int64]bool
	calls  []mintCall
	// fault makes mint transactions FAULT.
	fault bool
}

func newTestDestination() *testDestination {
	return &testDestination{minted: make(map[[2]int64]bool)}
}

func (d *testDestination) IsMinted(network *big.Int, id *big.Int) (bool, error) {
	return d.minted[[2]int64{network.Int64(), id.Int64()}], nil
}

func (d *testDestination) Mint(id *big.Int, burner util.Uint160, value *big.Int, details util.Uint256, network *big.Int) (util.Uint256, uint32, error) {
	d.calls = append(d.calls, mintCall{
		id:      id.Int64(),
		burner:  burner,
		value:   value.Int64(),
		details: details,
		network: network.Int64(),
	})
	if !d.fault {
		d.minted[[2]int64{network.Int64(), id.Int64()}] = true
	}
	return util.Uint256{byte(len(d.calls))}, 100, nil
}

func (d *testDestination) Wait(h util.Uint256, _ uint32, err error) (*state.AppExecResult, error) {
	if err != nil {
		return nil, err
	}

	res := &state.AppExecResult{Container: h}
	res.VMState = vmstate.Halt
	if d.fault {
		res.VMState = vmstate.Fault
		res.FaultException = "mint is paused"
	}
	return res, nil
}

func newTestRelayer(t *testing.T, origin *testOrigin, dst *testDestination, batch int) (*Relayer, *Store, *prometheus.Registry) {
	s, err := OpenStore(filepath.Join(t.TempDir(), "relay.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })

	reg := prometheus.NewRegistry()
	r := New(Prm{
		Logger:      zaptest.NewLogger(t),
		Origin:      origin,
		Destination: dst,
		Waiter:      dst,
		Store:       s,
		Registerer:  reg,
		BatchSize:   batch,
	})
	return r, s, reg
}

func TestRelayerSync(t *testing.T) {
	origin := new(testOrigin)
	dst := newTestDestination()
	r, s, _ := newTestRelayer(t, origin, dst, 0)

	n, err := r.Sync(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)

	b1 := origin.burn(t, util.Uint160{1}, 10, "")
	b2 := origin.burn(t, util.Uint160{2}, 25, "memo")

	n, err = r.Sync(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.Equal(t, []mintCall{
		{id: 1, burner: b1.Burner, value: 10, details: b1.Details, network: testNetwork},
		{id: 2, burner: b2.Burner, value: 25, details: b2.Details, network: testNetwork},
	}, dst.calls)
	require.Equal(t, 2.0, testutil.ToFloat64(r.metrics.relayed))

	cp, err := s.Checkpoint(testNetwork)
	require.NoError(t, err)
	require.EqualValues(t, 2, cp)

	t.Run("nothing new", func(t *testing.T) {
		n, err := r.Sync(context.Background())
		require.NoError(t, err)
		require.Zero(t, n)
		require.Len(t, dst.calls, 2)
	})
}

func TestRelayerSkipsMinted(t *testing.T) {
	origin := new(testOrigin)
	dst := newTestDestination()
	r, _, _ := newTestRelayer(t, origin, dst, 0)

	origin.burn(t, util.Uint160{1}, 10, "")
	origin.burn(t, util.Uint160{1}, 20, "")
	dst.minted[[2]int64{testNetwork, 1}] = true

	n, err := r.Sync(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.Len(t, dst.calls, 1)
	require.EqualValues(t, 2, dst.calls[0].id)
	require.Equal(t, 1.0, testutil.ToFloat64(r.metrics.skipped))
	require.Equal(t, 1.0, testutil.ToFloat64(r.metrics.relayed))
}

func TestRelayerSkipsMismatchedDetails(t *testing.T) {
	origin := new(testOrigin)
	dst := newTestDestination()
	r, _, _ := newTestRelayer(t, origin, dst, 0)

	rec := origin.burn(t, util.Uint160{1}, 10, "")
	rec.Value = big.NewInt(1000)

	n, err := r.Sync(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Empty(t, dst.calls)
	require.Equal(t, 1.0, testutil.ToFloat64(r.metrics.skipped))
}

func TestRelayerFailure(t *testing.T) {
	origin := new(testOrigin)
	dst := newTestDestination()
	r, s, _ := newTestRelayer(t, origin, dst, 0)

	origin.burn(t, util.Uint160{1}, 10, "")
	origin.burn(t, util.Uint160{1}, 20, "")

	dst.fault = true
	n, err := r.Sync(context.Background())
	require.ErrorContains(t, err, "mint is paused")
	require.Zero(t, n)
	require.Equal(t, 1.0, testutil.ToFloat64(r.metrics.failed))

	cp, err := s.Checkpoint(testNetwork)
	require.NoError(t, err)
	require.Zero(t, cp)

	dst.fault = false
	n, err = r.Sync(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, 2.0, testutil.ToFloat64(r.metrics.relayed))
}

func TestRelayerBatch(t *testing.T) {
	origin := new(testOrigin)
	dst := newTestDestination()
	r, s, _ := newTestRelayer(t, origin, dst, 2)

	for i := 0; i < 5; i++ {
		origin.burn(t, util.Uint160{1}, int64(i+1), "")
	}

	for _, expected := range []int{2, 2, 1, 0} {
		n, err := r.Sync(context.Background())
		require.NoError(t, err)
		require.Equal(t, expected, n)
	}

	cp, err := s.Checkpoint(testNetwork)
	require.NoError(t, err)
	require.EqualValues(t, 5, cp)
	require.Len(t, dst.calls, 5)
}

func TestRelayerCancel(t *testing.T) {
	origin := new(testOrigin)
	dst := newTestDestination()
	r, _, _ := newTestRelayer(t, origin, dst, 0)

	origin.burn(t, util.Uint160{1}, 10, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Sync(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, dst.calls)
}
