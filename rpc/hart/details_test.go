package hart

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestDetailHash(t *testing.T) {
	burner := util.Uint160{1, 2, 3}

	h, err := DetailHash(big.NewInt(7), burner, big.NewInt(80), "payload", big.NewInt(2))
	require.NoError(t, err)

	raw, err := stackitem.Serialize(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(7),
		stackitem.Make(burner.BytesBE()),
		stackitem.Make(80),
		stackitem.Make("payload"),
		stackitem.Make(2),
	}))
	require.NoError(t, err)
	require.Equal(t, hash.Sha256(raw), h)

	t.Run("fields are bound", func(t *testing.T) {
		other, err := DetailHash(big.NewInt(7), burner, big.NewInt(81), "payload", big.NewInt(2))
		require.NoError(t, err)
		require.NotEqual(t, h, other)

		other, err = DetailHash(big.NewInt(7), burner, big.NewInt(80), "payload", big.NewInt(3))
		require.NoError(t, err)
		require.NotEqual(t, h, other)
	})
}

func TestVerifyBurn(t *testing.T) {
	rec := &HartBurnRecord{
		ID:      big.NewInt(1),
		Burner:  util.Uint160{9},
		Value:   big.NewInt(100),
		Data:    "",
		Network: big.NewInt(2),
	}

	var err error
	rec.Details, err = DetailHash(rec.ID, rec.Burner, rec.Value, rec.Data, rec.Network)
	require.NoError(t, err)
	require.NoError(t, VerifyBurn(rec))

	rec.Value = big.NewInt(101)
	require.ErrorIs(t, VerifyBurn(rec), ErrDetailsMismatch)
}
