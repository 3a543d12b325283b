// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/deip/deipd/fault"
)

// Access - transactional access to one database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	DumpTx() []byte
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - a leveldb batch plus a read-your-writes cache
type AccessData struct {
	sync.Mutex
	inUse    bool
	readOnly bool
	db       *leveldb.DB
	batch    *leveldb.Batch
	cache    Cache
}

func newDA(db *leveldb.DB, trx *leveldb.Batch, cache Cache, readOnly bool) Access {
	return &AccessData{
		inUse:    false,
		readOnly: readOnly,
		db:       db,
		batch:    trx,
		cache:    cache,
	}
}

// Begin - start a transaction, only one may be open at a time
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.readOnly {
		return fault.NotAvailableInReadOnlyMode
	}
	if d.inUse {
		return fault.TransactionInUse
	}

	d.inUse = true
	return nil
}

// Put - queue a write
func (d *AccessData) Put(key []byte, value []byte) {
	stored := make([]byte, len(value))
	copy(stored, value)
	d.cache.Set(dbPut, string(key), stored)
	d.batch.Put(key, stored)
}

// Delete - queue a removal
func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch atomically and end the transaction
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.TransactionNotInUse
	}

	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
	return err
}

// DumpTx - raw form of the pending batch
func (d *AccessData) DumpTx() []byte {
	return d.batch.Dump()
}

// Get - pending value if any, otherwise the committed one
func (d *AccessData) Get(key []byte) ([]byte, error) {
	val, deleted, found := d.cache.Get(string(key))
	if deleted {
		return nil, leveldb.ErrNotFound
	}
	if found {
		return val, nil
	}
	return d.db.Get(key, nil)
}

// Iterator - committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

// Has - check pending writes then committed data
func (d *AccessData) Has(key []byte) (bool, error) {
	_, deleted, found := d.cache.Get(string(key))
	if deleted {
		return false, nil
	}
	if found {
		return true, nil
	}
	return d.db.Has(key, nil)
}

// InUse - true while a transaction is open
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Abort - drop every pending write
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}
