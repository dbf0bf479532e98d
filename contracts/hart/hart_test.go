package hart_test

import (
	"math/big"
	"path"
	"testing"

	"github.com/nspcc-dev/hart-contract/common"
	"github.com/nspcc-dev/hart-contract/contracts/hart/hartconst"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	hartPath    = "."
	listingPath = "../../internal/testcontracts/listing"

	networkID   = 2
	transferFee = 10
)

// ledger is a deployed HART contract with a dedicated fee recipient.
type ledger struct {
	*neotest.ContractInvoker

	feeRecipient neotest.Signer
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func deployHart(t *testing.T, e *neotest.Executor, args []any) util.Uint160 {
	ctr := neotest.CompileFile(t, e.CommitteeHash, hartPath, path.Join(hartPath, "config.yml"))
	e.DeployContract(t, ctr, args)
	return ctr.Hash
}

func newLedger(t *testing.T) *ledger {
	e := newExecutor(t)
	h := deployHart(t, e, []any{e.CommitteeHash, int64(networkID), int64(transferFee), int64(20)})

	l := &ledger{
		ContractInvoker: e.CommitteeInvoker(h),
		feeRecipient:    e.NewAccount(t),
	}
	l.Invoke(t, stackitem.Null{}, "setTransferRecipient", l.feeRecipient.ScriptHash())
	return l
}

// fund issues amount to every account.
func (l *ledger) fund(t *testing.T, amount int64, accs ...util.Uint160) {
	for _, a := range accs {
		l.Invoke(t, stackitem.Null{}, "mintSupply", a, amount)
	}
}

func (l *ledger) as(s ...neotest.Signer) *neotest.ContractInvoker {
	return l.WithSigners(s...)
}

func requireBigInt(t *testing.T, c *neotest.ContractInvoker, expected *big.Int, method string, args ...any) {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	require.Zero(t, expected.Cmp(s.Pop().BigInt()), "%s: expected %s", method, expected)
}

func requireInt(t *testing.T, c *neotest.ContractInvoker, expected int64, method string, args ...any) {
	requireBigInt(t, c, big.NewInt(expected), method, args...)
}

func requireBalance(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160, expected int64) {
	requireInt(t, c, expected, "balanceOf", acc)
}

// requireConservation checks that balances of accs sum up to total supply.
// accs must cover every account holding assets.
func requireConservation(t *testing.T, c *neotest.ContractInvoker, accs ...util.Uint160) {
	sum := new(big.Int)
	for _, a := range accs {
		s, err := c.TestInvoke(t, "balanceOf", a)
		require.NoError(t, err)
		sum.Add(sum, s.Pop().BigInt())
	}
	requireBigInt(t, c, sum, "totalSupply")
}

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

func appLog(t *testing.T, c *neotest.ContractInvoker, h util.Uint256) *result.ApplicationLog {
	aer := c.GetTxExecResult(t, h)
	return &result.ApplicationLog{
		Container:  h,
		Executions: []state.Execution{aer.Execution},
	}
}

// transfers returns (from, to, amount) of all Transfer notifications in the
// order of emission. Empty from or to are returned as nil.
func transfers(t *testing.T, c *neotest.ContractInvoker, h util.Uint256) [][3]any {
	var res [][3]any
	for _, ev := range c.GetTxExecResult(t, h).Events {
		if ev.Name != hartconst.TransferEvent {
			continue
		}
		arr := ev.Item.Value().([]stackitem.Item)
		require.Len(t, arr, 3)

		var tr [3]any
		for i := 0; i < 2; i++ {
			if _, ok := arr[i].(stackitem.Null); ok {
				continue
			}
			b, err := arr[i].TryBytes()
			require.NoError(t, err)
			u, err := util.Uint160DecodeBytesBE(b)
			require.NoError(t, err)
			tr[i] = u
		}
		amount, err := arr[2].TryInteger()
		require.NoError(t, err)
		tr[2] = amount.Int64()

		res = append(res, tr)
	}
	return res
}

func TestHartGeneric(t *testing.T) {
	l := newLedger(t)

	l.Invoke(t, hartconst.Symbol, "symbol")
	requireInt(t, l.ContractInvoker, hartconst.Decimals, "decimals")
	requireInt(t, l.ContractInvoker, 0, "totalSupply")
	requireInt(t, l.ContractInvoker, networkID, "networkID")
	requireInt(t, l.ContractInvoker, transferFee, "transferFee")
	requireInt(t, l.ContractInvoker, 20, "settlementFee")
	requireInt(t, l.ContractInvoker, common.Version, "version")
	l.Invoke(t, l.CommitteeHash.BytesBE(), "owner")
	l.Invoke(t, l.CommitteeHash.BytesBE(), "mintPauseAddress")
	l.Invoke(t, l.feeRecipient.ScriptHash().BytesBE(), "transferRecipient")
	l.Invoke(t, stackitem.Null{}, "minter")
	l.Invoke(t, false, "isMintPaused")
}

func TestHartDeploy(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		e := newExecutor(t)
		h := deployHart(t, e, []any{e.CommitteeHash, nil, nil, nil})
		c := e.CommitteeInvoker(h)

		fee := new(big.Int).Mul(big.NewInt(hartconst.DefaultTransferFee), big.NewInt(hartconst.Factor))
		requireBigInt(t, c, fee, "transferFee")
		requireInt(t, c, hartconst.DefaultNetworkID, "networkID")
		requireInt(t, c, hartconst.DefaultSettlementFee, "settlementFee")
	})
	t.Run("invalid owner", func(t *testing.T) {
		e := newExecutor(t)
		ctr := neotest.CompileFile(t, e.CommitteeHash, hartPath, path.Join(hartPath, "config.yml"))
		e.DeployContractCheckFAULT(t, ctr, []any{util.Uint160{}, nil, nil, nil}, hartconst.ErrInvalidDeployArgument)
	})
	t.Run("invalid settlement fee", func(t *testing.T) {
		e := newExecutor(t)
		ctr := neotest.CompileFile(t, e.CommitteeHash, hartPath, path.Join(hartPath, "config.yml"))
		e.DeployContractCheckFAULT(t, ctr, []any{e.CommitteeHash, nil, nil, int64(101)}, hartconst.ErrInvalidFee)
	})
}

func TestHartTransfer(t *testing.T) {
	l := newLedger(t)

	owner := l.CommitteeHash
	acc := l.NewAccount(t)
	other := l.NewAccount(t)
	fee := l.feeRecipient.ScriptHash()

	l.fund(t, 500, owner)

	h := l.Invoke(t, true, "transfer", owner, acc.ScriptHash(), int64(50), nil)
	require.Equal(t, [][3]any{
		{owner, acc.ScriptHash(), int64(50)},
		{owner, fee, int64(transferFee)},
	}, transfers(t, l.ContractInvoker, h))

	requireBalance(t, l.ContractInvoker, acc.ScriptHash(), 50)
	requireBalance(t, l.ContractInvoker, owner, 500-50-transferFee)
	requireBalance(t, l.ContractInvoker, fee, transferFee)
	requireInt(t, l.ContractInvoker, 500, "totalSupply")
	requireConservation(t, l.ContractInvoker, owner, acc.ScriptHash(), fee)

	cAcc := l.as(acc)

	t.Run("fee is charged on top of amount", func(t *testing.T) {
		cAcc.InvokeFail(t, hartconst.ErrInsufficientBalance, "transfer", acc.ScriptHash(), other.ScriptHash(), int64(41), nil)
		requireBalance(t, l.ContractInvoker, acc.ScriptHash(), 50)
	})
	t.Run("whole balance", func(t *testing.T) {
		cAcc.Invoke(t, true, "transfer", acc.ScriptHash(), other.ScriptHash(), int64(40), nil)
		requireBalance(t, l.ContractInvoker, acc.ScriptHash(), 0)
		requireBalance(t, l.ContractInvoker, other.ScriptHash(), 40)
		requireBalance(t, l.ContractInvoker, fee, 2*transferFee)
		requireConservation(t, l.ContractInvoker, owner, acc.ScriptHash(), other.ScriptHash(), fee)
	})
	t.Run("not witnessed", func(t *testing.T) {
		cAcc.InvokeFail(t, hartconst.ErrUnauthorized, "transfer", owner, acc.ScriptHash(), int64(1), nil)
	})
	t.Run("invalid receiver", func(t *testing.T) {
		l.InvokeFail(t, hartconst.ErrInvalidAddress, "transfer", owner, util.Uint160{}, int64(1), nil)
		l.InvokeFail(t, hartconst.ErrInvalidAddress, "transfer", owner, []byte{1, 2, 3}, int64(1), nil)
	})
	t.Run("negative amount", func(t *testing.T) {
		l.InvokeFail(t, hartconst.ErrNegativeAmount, "transfer", owner, acc.ScriptHash(), int64(-1), nil)
	})
	t.Run("zero fee", func(t *testing.T) {
		l.Invoke(t, stackitem.Null{}, "setTransferFee", int64(0))

		h := l.Invoke(t, true, "transfer", owner, other.ScriptHash(), int64(5), nil)
		require.Equal(t, [][3]any{
			{owner, other.ScriptHash(), int64(5)},
		}, transfers(t, l.ContractInvoker, h))
		requireBalance(t, l.ContractInvoker, fee, 2*transferFee)
	})

	requireConservation(t, l.ContractInvoker, owner, acc.ScriptHash(), other.ScriptHash(), fee)
}

func TestHartMintSupply(t *testing.T) {
	l := newLedger(t)

	acc := l.NewAccount(t)
	minter := l.NewAccount(t)

	h := l.Invoke(t, stackitem.Null{}, "mintSupply", acc.ScriptHash(), int64(500))
	require.Equal(t, [][3]any{
		{nil, acc.ScriptHash(), int64(500)},
	}, transfers(t, l.ContractInvoker, h))
	requireBalance(t, l.ContractInvoker, acc.ScriptHash(), 500)
	requireInt(t, l.ContractInvoker, 500, "totalSupply")

	l.as(acc).InvokeFail(t, hartconst.ErrUnauthorized, "mintSupply", acc.ScriptHash(), int64(1))
	l.as(minter).InvokeFail(t, hartconst.ErrUnauthorized, "mintSupply", acc.ScriptHash(), int64(1))

	l.Invoke(t, stackitem.Null{}, "setMinter", minter.ScriptHash())
	l.as(minter).Invoke(t, stackitem.Null{}, "mintSupply", acc.ScriptHash(), int64(1))
	requireBalance(t, l.ContractInvoker, acc.ScriptHash(), 501)

	l.InvokeFail(t, hartconst.ErrNonPositiveAmount, "mintSupply", acc.ScriptHash(), int64(0))
	l.InvokeFail(t, hartconst.ErrInvalidAddress, "mintSupply", util.Uint160{}, int64(1))

	requireConservation(t, l.ContractInvoker, acc.ScriptHash())
}
