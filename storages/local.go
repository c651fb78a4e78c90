// Package storages holds sequence implementations that live behind an external resource.
//
// The point of the package is not the storage itself,
// but the demonstration that the Sequence protocol carries over:
// every generic algorithm of the iterators package runs unchanged
// against a disk backed container, the same way it runs against ABC or a slice.
package storages

import (
	"encoding/binary"

	"github.com/boltdb/bolt"

	"github.com/adamluzsi/sequences"
	"github.com/adamluzsi/sequences/iterators"
)

const localBucketName = `sequence`

// NewLocal opens (or creates) a bolt database file at the given path
// and returns an append only, ordered, disk backed sequence of string values.
func NewLocal(path string) (*Local, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(localBucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Local{db: db}, nil
}

type Local struct {
	db *bolt.DB
}

// Close the local database and release the file lock
func (s *Local) Close() error {
	return s.db.Close()
}

// Append stores the received values at the end of the sequence.
func (s *Local) Append(values ...string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(localBucketName))

		for _, value := range values {
			key, err := bucket.NextSequence()
			if err != nil {
				return err
			}

			if err := bucket.Put(uintToBytes(key), []byte(value)); err != nil {
				return err
			}
		}

		return nil
	})
}

// Len reports how many values the sequence holds on disk.
func (s *Local) Len() int {
	var total int

	_ = s.db.View(func(tx *bolt.Tx) error {
		total = tx.Bucket([]byte(localBucketName)).Stats().KeyN
		return nil
	})

	return total
}

// At returns the value stored at the given index position.
// Index positions outside the stored range fail with ErrOutOfRange.
func (s *Local) At(index int) (string, error) {
	if index < 0 {
		return "", sequences.ErrOutOfRange.F("%d is out of range of the stored sequence", index)
	}

	var (
		value string
		found bool
	)

	err := s.db.View(func(tx *bolt.Tx) error {
		cursor := tx.Bucket([]byte(localBucketName)).Cursor()

		position := 0
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			if position == index {
				value = string(v)
				found = true
				return nil
			}
			position++
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	if !found {
		return "", sequences.ErrOutOfRange.F("%d is out of range of the stored sequence", index)
	}

	return value, nil
}

// Iterate returns a fresh iterator over the stored values, in insertion order.
// The iterator holds a read transaction open, Close releases it.
func (s *Local) Iterate() sequences.Iterator[string] {
	tx, err := s.db.Begin(false)
	if err != nil {
		return iterators.NewError[string](err)
	}

	return &cursorIter{tx: tx, cursor: tx.Bucket([]byte(localBucketName)).Cursor()}
}

type cursorIter struct {
	tx     *bolt.Tx
	cursor *bolt.Cursor

	started bool
	closed  bool
	value   string
}

func (i *cursorIter) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	return i.tx.Rollback()
}

func (i *cursorIter) Err() error {
	return nil
}

func (i *cursorIter) Next() bool {
	if i.closed {
		return false
	}

	var k, v []byte
	if !i.started {
		i.started = true
		k, v = i.cursor.First()
	} else {
		k, v = i.cursor.Next()
	}

	if k == nil {
		return false
	}

	i.value = string(v)
	return true
}

func (i *cursorIter) Value() string {
	return i.value
}

// big endian keeps the key order aligned with the insertion order
func uintToBytes(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}
