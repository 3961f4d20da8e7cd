package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabase_ReserveUpdate_FirstWriterWins(t *testing.T) {
	t.Parallel()

	db := NewDatabase[string]()
	id := NewSymbolID("c:@F@foo")

	require.True(t, db.Reserve(id))
	require.False(t, db.Reserve(id), "a second Reserve on the same ID must lose the race")

	db.Update(id, "first")
	v, ok := db.Get(id)
	require.True(t, ok)
	assert.Equal(t, "first", v)
	assert.Equal(t, 1, db.Len())
}

func TestDatabase_Reserve_ConcurrentCallersAgreeOnOneWinner(t *testing.T) {
	t.Parallel()

	db := NewDatabase[int]()
	id := NewSymbolID("c:@F@bar")

	const n = 64
	var wins int
	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if db.Reserve(id) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestDatabase_CountMatch_ExceedsStoredEntries(t *testing.T) {
	t.Parallel()

	db := NewDatabase[string]()
	id := NewSymbolID("c:@F@baz")

	db.CountMatch()
	db.CountMatch()
	require.True(t, db.Reserve(id))
	db.Update(id, "only-one")

	assert.Equal(t, uint64(2), db.NumMatches())
	assert.Equal(t, 1, db.Len())
}

func TestDatabase_Delete(t *testing.T) {
	t.Parallel()

	db := NewDatabase[string]()
	id := NewSymbolID("c:@F@qux")
	db.Reserve(id)
	db.Update(id, "v")

	db.Delete(id)
	assert.False(t, db.Contains(id))
	assert.Equal(t, 0, db.Len())
}

func TestNewSymbolID_DeterministicAndNullForEmpty(t *testing.T) {
	t.Parallel()

	a := NewSymbolID("c:@N@foo")
	b := NewSymbolID("c:@N@foo")
	c := NewSymbolID("c:@N@bar")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, NewSymbolID("").IsNull())
	assert.False(t, a.IsNull())
}
