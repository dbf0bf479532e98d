package hart

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// ErrDetailsMismatch is returned by VerifyBurn if the record details are not
// bound to its fields.
var ErrDetailsMismatch = errors.New("burn details mismatch")

// DetailHash computes the details hash the contract binds to a burn record.
func DetailHash(id *big.Int, burner util.Uint160, value *big.Int, data string, network *big.Int) (util.Uint256, error) {
	raw, err := stackitem.Serialize(stackitem.NewStruct([]stackitem.Item{
		stackitem.NewBigInteger(id),
		stackitem.NewByteArray(burner.BytesBE()),
		stackitem.NewBigInteger(value),
		stackitem.NewByteArray([]byte(data)),
		stackitem.NewBigInteger(network),
	}))
	if err != nil {
		return util.Uint256{}, fmt.Errorf("serialize burn details: %w", err)
	}

	return hash.Sha256(raw), nil
}

// VerifyBurn recomputes details hash of the record and checks it matches the
// stored one.
func VerifyBurn(rec *HartBurnRecord) error {
	h, err := DetailHash(rec.ID, rec.Burner, rec.Value, rec.Data, rec.Network)
	if err != nil {
		return err
	}
	if !h.Equals(rec.Details) {
		return fmt.Errorf("%w: burn %s", ErrDetailsMismatch, rec.ID)
	}
	return nil
}
