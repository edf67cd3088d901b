// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/retrofit/core"
	"github.com/poiesic/retrofit/embedding"
	"github.com/poiesic/retrofit/storage"
)

// validTableName keeps names out of the key separator space.
var validTableName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// TableRepository stores named embedding tables in BadgerDB. Each table is
// kept as one metadata record, one entry record per word (keyed by the
// word's content ID), and one order record per position so stored tables
// round-trip in exact table order.
type TableRepository struct {
	backend *Backend
}

var _ storage.TableRepository = (*TableRepository)(nil)

// NewTableRepository opens a table repository backed by a BadgerDB
// database at path.
func NewTableRepository(path string) (storage.TableRepository, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return &TableRepository{backend: backend}, nil
}

// newTableRepository wraps an existing backend; used by tests and by
// callers sharing one backend across repositories.
func newTableRepository(backend *Backend) *TableRepository {
	return &TableRepository{backend: backend}
}

// Close closes the underlying backend.
func (r *TableRepository) Close() error {
	return r.backend.Close()
}

// PutTable stores a table under the given name, replacing any previous
// table stored under that name.
func (r *TableRepository) PutTable(ctx context.Context, name string, table *embedding.Table) error {
	if !validTableName.MatchString(name) {
		return fmt.Errorf("%w: %q", storage.ErrInvalidName, name)
	}
	if table == nil || table.Len() == 0 {
		return core.ErrEmptyTable
	}
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		// Drop any previous table stored under this name
		if err := deleteTableKeys(tx, name); err != nil {
			return err
		}

		meta := storage.MarshalTableMeta(table.Len(), table.Dim())
		if err := tx.Set(makeTableMetaKey(name), meta); err != nil {
			return err
		}

		for i, entry := range table.Entries() {
			id := core.IDFromWord(entry.Word)
			if err := tx.Set(makeEntryKey(name, id), storage.MarshalEntry(entry)); err != nil {
				return err
			}
			if err := tx.Set(makeOrderKey(name, i), storage.MarshalID(id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetTable retrieves the table stored under the given name.
func (r *TableRepository) GetTable(ctx context.Context, name string) (*embedding.Table, error) {
	if !validTableName.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", storage.ErrInvalidName, name)
	}
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var table *embedding.Table
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeTableMetaKey(name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %q", storage.ErrNotFound, name)
		}
		if err != nil {
			return err
		}
		var words int
		err = item.Value(func(val []byte) error {
			var verr error
			words, _, verr = storage.UnmarshalTableMeta(val)
			return verr
		})
		if err != nil {
			return err
		}

		entries := make([]core.Entry, 0, words)

		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeTablePrefix(tableOrderPrefix, name)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			entryItem, err := tx.Get(makeEntryKey(name, id))
			if err != nil {
				return err
			}
			var entry core.Entry
			err = entryItem.Value(func(val []byte) error {
				var err error
				entry, err = storage.UnmarshalEntry(val)
				return err
			})
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}

		table, err = embedding.FromEntries(entries)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return table, nil
}

// DeleteTable removes the table stored under the given name.
func (r *TableRepository) DeleteTable(ctx context.Context, name string) error {
	if !validTableName.MatchString(name) {
		return fmt.Errorf("%w: %q", storage.ErrInvalidName, name)
	}
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(makeTableMetaKey(name)); err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %q", storage.ErrNotFound, name)
		} else if err != nil {
			return err
		}

		if err := tx.Delete(makeTableMetaKey(name)); err != nil {
			return err
		}
		if err := deleteTableKeys(tx, name); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// ListTables returns the names of all stored tables in lexical order.
func (r *TableRepository) ListTables(ctx context.Context) ([]string, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var names []string
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(tableMetaPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := string(iter.Item().Key())
			names = append(names, strings.TrimPrefix(key, tableMetaPrefix+":"))
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}

// deleteTableKeys removes all entry and order records of a named table.
// The metadata record is left to the caller.
func deleteTableKeys(tx *badger.Txn, name string) error {
	for _, kind := range []string{tableEntryPrefix, tableOrderPrefix} {
		prefix := makeTablePrefix(kind, name)

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)

		var keys [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, iter.Item().KeyCopy(nil))
		}
		iter.Close()

		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
	}
	return nil
}
