package hart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequenceKeyOrder(t *testing.T) {
	ids := []int{1, 2, 127, 128, 255, 256, 257, 65536, 1 << 40}

	for i := range ids {
		k := burnKey(ids[i])
		require.Len(t, k, 9)
		require.Equal(t, byte(burnPrefix), k[0])

		if i > 0 {
			require.Equal(t, -1, bytes.Compare(burnKey(ids[i-1]), k), "%d vs %d", ids[i-1], ids[i])
		}
	}

	require.Equal(t, []byte{receiptPrefix, 0, 0, 0, 0, 0, 0, 1, 0}, receiptKey(256))
}
