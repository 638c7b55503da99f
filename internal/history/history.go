// Package history keeps a journal of completed transforms in a BoltDB
// file, so a past rotation distance can be recovered.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	"go.etcd.io/bbolt"
)

var bucketRecords = []byte("records")

var db *bbolt.DB

type Config struct {
	File string `yaml:"file"`
}

// Record describes one completed transform. The text itself is not
// journaled, only the parameters needed to redo or undo it.
type Record struct {
	Time     time.Time `json:"time"`
	Action   string    `json:"action"`
	Method   string    `json:"method"`
	Rotation int       `json:"rotation"`
	Chars    int       `json:"chars"`
}

func Open(config Config) {
	if db != nil {
		panic("history: already opened")
	}
	if config.File == "" {
		panic("history: file is required")
	}

	var err error
	db, err = bbolt.Open(config.File, 0600, &bbolt.Options{
		Timeout: 30 * time.Second,
	})
	if err != nil {
		panic(fmt.Errorf("history: open bbolt db: %w", err))
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketRecords)
		if err != nil {
			return fmt.Errorf("create bucket %q: %w", bucketRecords, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		db = nil
		panic(fmt.Errorf("history: initialize bucket: %w", err))
	}
}

func Close() error {
	if db == nil {
		panic("history: not opened")
	}

	err := db.Close()
	if err != nil {
		return fmt.Errorf("history: close bbolt db: %w", err)
	}
	db = nil
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func Closer() io.Closer {
	return closerFunc(Close)
}

// Enabled reports whether a journal is open.
func Enabled() bool {
	return db != nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("history: must: %w", err))
	}
	return v
}

// Append journals one record. Records are keyed by their timestamp so a
// bucket scan returns them in chronological order.
func Append(r Record) error {
	if db == nil {
		panic("history: not opened")
	}

	return db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketRecords)
		if b == nil {
			return fmt.Errorf("history: records bucket not found")
		}

		key := []byte(r.Time.UTC().Format(time.RFC3339Nano))
		return b.Put(key, must(json.Marshal(r)))
	})
}

var errStop = fmt.Errorf("stop iteration")

// All yields every journaled record, oldest first.
func All() iter.Seq[Record] {
	if db == nil {
		panic("history: not opened")
	}

	return func(yield func(Record) bool) {
		err := db.View(func(tx *bbolt.Tx) error {
			b := tx.Bucket(bucketRecords)
			if b == nil {
				return fmt.Errorf("history: records bucket not found")
			}

			return b.ForEach(func(k, v []byte) error {
				var r Record
				err := json.Unmarshal(v, &r)
				if err != nil {
					return fmt.Errorf("history: unmarshal record %q: %w", k, err)
				}

				if !yield(r) {
					return errStop
				}
				return nil
			})
		})

		if err != nil {
			if errors.Is(err, errStop) {
				return
			}
			panic(fmt.Errorf("history: get all records: %w", err))
		}
	}
}
