// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/fault"
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Agreement         *PoolHandle `prefix:"A"`
	AgreementIdByKind *PoolHandle `prefix:"K"`
	Crowdfunding      *PoolHandle `prefix:"C"`
	Contributions     *PoolHandle `prefix:"U"`
	Project           *PoolHandle `prefix:"P"`
	Dao               *PoolHandle `prefix:"D"`
	Asset             *PoolHandle `prefix:"S"`
	Balance           *PoolHandle `prefix:"B"`
	Chain             *PoolHandle `prefix:"H"`
	TestData          *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open state database and its pools
type Database struct {
	sync.RWMutex

	log    *logger.L
	db     *leveldb.DB
	access Access
	Pools  Pools
}

// Open - open (or create) the database in the named directory
func Open(name string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return initialise(db, name, readOnly)
}

// OpenMemory - a database that lives only as long as the process
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return initialise(db, "memory", ReadWrite)
}

func initialise(db *leveldb.DB, name string, readOnly bool) (*Database, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	log := logger.New("storage")

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.DatabaseIsNewer
	}

	if 0 == version {
		if readOnly {
			log.Criticalf("database: %s is empty in read only mode", name)
			return nil, fault.NotAvailableInReadOnlyMode
		}
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	d := &Database{
		log:    log,
		db:     db,
		access: newDA(db, new(leveldb.Batch), newCache(), readOnly),
	}

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pools)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pools).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: d.access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	log.Infof("opened: %s  version: 0x%x", name, currentDBVersion)

	ok = true // prevent db close
	return d, nil
}

// Close - close the database connection
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()

	if nil != d.db {
		if d.access.InUse() {
			d.log.Warn("close with open transaction, aborting")
			d.access.Abort()
		}
		d.db.Close()
		d.db = nil
	}
}

// Begin - start the single write transaction
func (d *Database) Begin() error {
	return d.access.Begin()
}

// Commit - atomically apply the current transaction
func (d *Database) Commit() error {
	return d.access.Commit()
}

// Abort - discard the current transaction
func (d *Database) Abort() {
	d.access.Abort()
}

// InTransaction - true between Begin and Commit/Abort
func (d *Database) InTransaction() bool {
	return d.access.InUse()
}

// return the stored version number, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
