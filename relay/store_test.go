package relay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relay.db")

	s, err := OpenStore(path)
	require.NoError(t, err)

	cp, err := s.Checkpoint(2)
	require.NoError(t, err)
	require.Zero(t, cp)

	require.NoError(t, s.SetCheckpoint(2, 10))
	require.NoError(t, s.SetCheckpoint(5, 3))
	require.NoError(t, s.Close())

	s, err = OpenStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })

	cp, err = s.Checkpoint(2)
	require.NoError(t, err)
	require.EqualValues(t, 10, cp)

	cp, err = s.Checkpoint(5)
	require.NoError(t, err)
	require.EqualValues(t, 3, cp)
}
