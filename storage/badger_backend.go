package storage

import (
	"errors"

	"github.com/dgraph-io/badger/v2"
)

// TestBadgerDB opens a throwaway in-memory badger instance.
func TestBadgerDB() *badger.DB {
	option := badger.DefaultOptions("").WithInMemory(true)
	db, err := badger.Open(option)
	if err != nil {
		panic(err)
	}
	return db
}

// OpenBadgerDB opens the on-disk archive at path.
func OpenBadgerDB(path string) (*badger.DB, error) {
	option := badger.DefaultOptions(path).WithLogger(nil)
	return badger.Open(option)
}

type BadgerBackend struct {
	db *badger.DB
}

func NewBadgerBackend(db *badger.DB) *BadgerBackend {
	return &BadgerBackend{db: db}
}

func (backend *BadgerBackend) Close() error {
	return backend.db.Close()
}

func (backend *BadgerBackend) txnGet(key []byte) ([]byte, error) {
	var buf []byte
	err := backend.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		buf, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	return buf, err
}

func (backend *BadgerBackend) txnPut(key, buf []byte) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, buf)
	})
}

func (backend *BadgerBackend) GetSummary(fileID, column int64) ([]byte, error) {
	return backend.txnGet(GetKey(false, fileID, column))
}

func (backend *BadgerBackend) PutSummary(fileID, column int64, buf []byte) error {
	return backend.txnPut(GetKey(false, fileID, column), buf)
}

func (backend *BadgerBackend) GetManifest(fileID int64) ([]byte, error) {
	return backend.txnGet(GetKey(true, fileID, 0))
}

func (backend *BadgerBackend) PutManifest(fileID int64, buf []byte) error {
	return backend.txnPut(GetKey(true, fileID, 0), buf)
}

func (backend *BadgerBackend) PutFile(
	fileID int64, manifest []byte, summaries [][]byte) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(GetKey(true, fileID, 0), manifest); err != nil {
			return err
		}
		for column, buf := range summaries {
			key := GetKey(false, fileID, int64(column))
			if err := txn.Set(key, buf); err != nil {
				return err
			}
		}
		return nil
	})
}

func (backend *BadgerBackend) deletePrefix(txn *badger.Txn, prefix []byte) error {
	iterOpts := badger.IteratorOptions{Prefix: prefix}
	iter := txn.NewIterator(iterOpts)
	defer iter.Close()

	var keys [][]byte
	for iter.Seek(nil); iter.Valid(); iter.Next() {
		keys = append(keys, iter.Item().KeyCopy(nil))
	}
	for _, key := range keys {
		if err := txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

func (backend *BadgerBackend) DeleteFile(fileID int64) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		if err := backend.deletePrefix(txn, GetKeyPrefix(false, fileID)); err != nil {
			return err
		}
		return backend.deletePrefix(txn, GetKeyPrefix(true, fileID))
	})
}

func (backend *BadgerBackend) IterateColumns(
	fileID int64, lambda func(int64) error) error {
	prefix := GetKeyPrefix(false, fileID)
	return backend.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.IteratorOptions{Prefix: prefix}
		iter := txn.NewIterator(iterOpts)
		defer iter.Close()

		for iter.Seek(nil); iter.Valid(); iter.Next() {
			if err := lambda(GetColumnFromKey(iter.Item().Key())); err != nil {
				return err
			}
		}
		return nil
	})
}
