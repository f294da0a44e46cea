package libsticks

import (
	"github.com/dgraph-io/badger/v3"
)

// GridSet allows adding grid states and returning if an identical state has already been added.
type GridSet interface {

	// TryAdd adds the cell state of g if it is not already present.
	//
	// If an identical cell state is already in this GridSet, this call has no effect and TryAdd() returns false.
	// After one or more calls to TryAdd(), call Close() for cleanup.
	TryAdd(g *Grid) (bool, error)

	// Len returns the number of distinct states added so far.
	Len() int

	// Close removes all previously added items from this set.
	Close()
}

func NewGridSet() GridSet {
	return &gridSet{}
}

type gridSet struct {
	lsmSet
	count int
	key   []byte
}

func (set *gridSet) TryAdd(g *Grid) (bool, error) {
	set.key = g.AppendCells(set.key[:0])
	added, err := set.tryAdd(set.key)
	if added {
		set.count++
	}
	return added, err
}

func (set *gridSet) Len() int {
	return set.count
}

func (set *gridSet) Close() {
	set.lsmSet.Close()
	set.count = 0
}

type lsmSet struct {
	db *badger.DB
}

func (set *lsmSet) autoOpen() error {
	if set.db != nil {
		return nil
	}
	dbOpts := badger.DefaultOptions("").WithInMemory(true)
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	var err error
	set.db, err = badger.Open(dbOpts)
	return err
}

func (set *lsmSet) tryAdd(key []byte) (bool, error) {
	if err := set.autoOpen(); err != nil {
		return false, err
	}

	added := false
	err := set.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			// no-op since the key is already in the db
			return nil
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		added = true
		return txn.Set(key, nil)
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

func (set *lsmSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}
