// Package kvdb persists intersection records in bbolt so the graph can be
// rebuilt without re-parsing the source map file.
package kvdb

import (
	"errors"
	"sync"

	"github.com/lintang-b-s/intersection-graph/pkg/graph"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var (
	ErrKeyNotExists = errors.New("key not exists")
)

const (
	BBOLTDB_BUCKET = "intersections"
)

type KVDB struct {
	db *bbolt.DB
	sync.Mutex
}

func NewKVDB(db *bbolt.DB) (*KVDB, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(BBOLTDB_BUCKET))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &KVDB{db: db}, nil
}

// SaveRecords writes a batch of intersection records in one batched txn.
func (db *KVDB) SaveRecords(records []graph.IntersectionRecord) error {
	db.Lock()
	defer db.Unlock()
	return db.db.Batch(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_BUCKET))
		for _, record := range records {
			recordBytes, err := msgpack.Marshal(record)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(record.ID), recordBytes); err != nil {
				return err
			}
		}
		return nil
	})
}

func (db *KVDB) GetRecord(id string) (record graph.IntersectionRecord, err error) {
	db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_BUCKET))
		recordBytes := b.Get([]byte(id))
		if recordBytes == nil {
			err = ErrKeyNotExists
			return nil
		}
		err = msgpack.Unmarshal(recordBytes, &record)
		return nil
	})
	return
}

// AllRecords scans the bucket into the id-keyed record set the graph is
// built from.
func (db *KVDB) AllRecords() (map[string]graph.IntersectionRecord, error) {
	records := make(map[string]graph.IntersectionRecord)
	err := db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_BUCKET))
		return b.ForEach(func(k, v []byte) error {
			var record graph.IntersectionRecord
			if err := msgpack.Unmarshal(v, &record); err != nil {
				return err
			}
			records[string(k)] = record
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
