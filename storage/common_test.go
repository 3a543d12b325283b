// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/deip/deipd/fixtures"
	"github.com/deip/deipd/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// common test setup routines

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T) *storage.Database {
	fixtures.SetupTestLogger()
	removeFiles()
	db, err := storage.Open(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return db
}

// post test cleanup
func teardown(db *storage.Database) {
	db.Close()
	removeFiles()
	fixtures.TeardownTestLogger()
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// data for various test routines
var sourceElements = makeElements([]stringElement{
	{"key-one", "data-one"},
	{"key-two", "data-two"},
	{"key-three", "data-three"},
	{"key-four", "data-four"},
	{"key-five", "data-five"},
	{"key-six", "data-six"},
	{"key-seven", "data-seven"},
})

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

// a key that must not exist
var nonExistantKey = []byte("/nonexistant")

// store the source elements in one committed transaction
func populate(t *testing.T, db *storage.Database) {
	if err := db.Begin(); nil != err {
		t.Fatalf("begin error: %s", err)
	}
	for _, e := range sourceElements {
		db.Pools.TestData.Put(e.Key, e.Value)
	}
	if err := db.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}
