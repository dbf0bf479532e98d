package relay

import (
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var checkpointBucket = []byte("checkpoints")

// Store keeps the last relayed burn ID per origin network.
type Store struct {
	db *bbolt.DB
}

// OpenStore opens (creating if necessary) checkpoint database at path.
func OpenStore(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open checkpoint database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(checkpointBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init checkpoint bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Checkpoint returns the last relayed burn ID of the network, 0 if nothing
// was relayed yet.
func (s *Store) Checkpoint(network int64) (int64, error) {
	var id int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(checkpointBucket).Get(networkKey(network))
		if v == nil {
			return nil
		}
		if len(v) != 8 {
			return fmt.Errorf("invalid checkpoint length %d", len(v))
		}
		id = int64(binary.BigEndian.Uint64(v))
		return nil
	})

	return id, err
}

// SetCheckpoint saves the last relayed burn ID of the network.
func (s *Store) SetCheckpoint(network, id int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		v := make([]byte, 8)
		binary.BigEndian.PutUint64(v, uint64(id))
		return tx.Bucket(checkpointBucket).Put(networkKey(network), v)
	})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func networkKey(network int64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(network))
	return k
}
