// Package state persists processed track summaries between runs.
// Entries are keyed by document content and processing configuration,
// so a changed file or a changed threshold is a miss.
package state

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/rotblauer/gpxstat/params"
	"github.com/rotblauer/gpxstat/summary"
	"go.etcd.io/bbolt"
)

var ErrReadOnly = errors.New("state is read-only")

// Entry is what is remembered about a processed document.
type Entry struct {
	Name      string          `json:"name"`
	Valid     bool            `json:"valid"`
	Waypoints int             `json:"waypoints"`
	Warnings  int             `json:"warnings"`
	Summary   summary.Summary `json:"summary"`
}

// Store is a bbolt database fronted by an in-memory TTL cache.
type Store struct {
	DB    *bbolt.DB
	mem   *ttlcache.Cache[string, Entry]
	rOnly bool
}

// Open opens (or creates) the summary database in datadir.
// A writable store holds an exclusive lock on the database file until closed;
// Open waits up to a second for it.
func Open(datadir string, readOnly bool) (*Store, error) {
	if err := os.MkdirAll(datadir, 0700); err != nil {
		return nil, err
	}
	db, err := bbolt.Open(filepath.Join(datadir, params.CacheDBName), 0600, &bbolt.Options{
		ReadOnly: readOnly,
		Timeout:  time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("open state %s: %w", datadir, err)
	}
	return &Store{
		DB: db,
		mem: ttlcache.New[string, Entry](
			ttlcache.WithTTL[string, Entry](params.CacheMemoryTTL),
			ttlcache.WithCapacity[string, Entry](params.CacheMemoryLength)),
		rOnly: readOnly,
	}, nil
}

func (s *Store) Close() error {
	s.mem.DeleteAll()
	return s.DB.Close()
}

// Key identifies a document's raw bytes processed with config.
func Key(raw []byte, config *params.TrackConfig) (string, error) {
	h, err := hashstructure.Hash(config, hashstructure.FormatV2, nil)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x-%016x", sha256.Sum256(raw), h), nil
}

// Get returns the entry stored at key, if any.
func (s *Store) Get(key string) (Entry, bool, error) {
	if item := s.mem.Get(key); item != nil {
		return item.Value(), true, nil
	}
	got, err := s.readKV([]byte(key))
	if err != nil || got == nil {
		return Entry{}, false, err
	}
	var e Entry
	if err := json.Unmarshal(got, &e); err != nil {
		return Entry{}, false, fmt.Errorf("decode state entry %s: %w", key, err)
	}
	s.mem.Set(key, e, ttlcache.DefaultTTL)
	return e, true, nil
}

// Put stores e at key.
func (s *Store) Put(key string, e Entry) error {
	if s.rOnly {
		return ErrReadOnly
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if err := s.storeKV([]byte(key), b); err != nil {
		return err
	}
	s.mem.Set(key, e, ttlcache.DefaultTTL)
	return nil
}

// Len returns the number of stored entries.
func (s *Store) Len() (int, error) {
	n := 0
	err := s.DB.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket(params.CacheBucket); b != nil {
			n = b.Stats().KeyN
		}
		return nil
	})
	return n, err
}

func (s *Store) storeKV(key []byte, data []byte) error {
	return s.DB.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(params.CacheBucket)
		if err != nil {
			return err
		}
		return bucket.Put(key, data)
	})
}

func (s *Store) readKV(key []byte) ([]byte, error) {
	var buf *bytes.Buffer
	err := s.DB.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(params.CacheBucket)
		if bucket == nil {
			return nil
		}
		// The value returned by Get is only valid in the scope of the transaction.
		got := bucket.Get(key)
		if got == nil {
			return nil
		}
		buf = bytes.NewBuffer(nil)
		_, err := buf.Write(got)
		return err
	})
	if err != nil || buf == nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
