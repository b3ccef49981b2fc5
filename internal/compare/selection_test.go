package compare_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/phonecmp/internal/catalog"
	"github.com/tayloree/phonecmp/internal/compare"
	"github.com/tayloree/phonecmp/internal/storage"
)

// failingStore fails every operation.
type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) { return "", false, errors.New("disk gone") }
func (failingStore) Set(string, string) error         { return errors.New("disk gone") }
func (failingStore) Remove(string) error              { return errors.New("disk gone") }
func (failingStore) Close() error                     { return nil }

func TestSelection_StartsEmpty(t *testing.T) {
	sel := compare.NewSelection(storage.NewMemory())

	assert.Empty(t, sel.IDs())
	assert.True(t, sel.CanAddMore())
	assert.False(t, sel.CanCompare())
}

func TestSelection_ToggleAddsInOrderAndRemoves(t *testing.T) {
	sel := compare.NewSelection(storage.NewMemory())

	assert.True(t, sel.Toggle("a"))
	assert.True(t, sel.Toggle("b"))
	assert.True(t, sel.Toggle("c"))
	assert.Equal(t, []string{"a", "b", "c"}, sel.IDs())
	assert.True(t, sel.CanCompare())
	assert.False(t, sel.CanAddMore())

	assert.True(t, sel.Toggle("b"))
	assert.Equal(t, []string{"a", "c"}, sel.IDs())
	assert.True(t, sel.IsSelected("c"))
	assert.False(t, sel.IsSelected("b"))
}

func TestSelection_FourthToggleIsNoOp(t *testing.T) {
	sel := compare.NewSelection(storage.NewMemory())
	sel.Toggle("a")
	sel.Toggle("b")
	sel.Toggle("c")

	assert.False(t, sel.Toggle("d"))
	assert.Equal(t, []string{"a", "b", "c"}, sel.IDs())
}

func TestSelection_ToggleIsSelfInverse(t *testing.T) {
	sel := compare.NewSelection(storage.NewMemory())
	sel.Toggle("a")
	before := sel.IDs()

	sel.Toggle("b")
	sel.Toggle("b")
	assert.Equal(t, before, sel.IDs())
}

func TestSelection_RemoveAbsentIsNoOp(t *testing.T) {
	sel := compare.NewSelection(storage.NewMemory())
	sel.Toggle("a")

	assert.False(t, sel.Remove("zzz"))
	assert.Equal(t, []string{"a"}, sel.IDs())

	assert.True(t, sel.Remove("a"))
	assert.Empty(t, sel.IDs())
}

func TestSelection_ClearDisablesCompare(t *testing.T) {
	sel := compare.NewSelection(storage.NewMemory())
	sel.Toggle("a")
	sel.Toggle("b")

	sel.Clear()
	assert.False(t, sel.CanCompare())
	assert.Empty(t, sel.IDs())
}

func TestSelection_RandomTogglesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := []string{"a", "b", "c", "d", "e"}
	sel := compare.NewSelection(storage.NewMemory())

	for range 1000 {
		sel.Toggle(pool[rng.Intn(len(pool))])

		ids := sel.IDs()
		assert.LessOrEqual(t, len(ids), compare.MaxSelected)
		seen := map[string]bool{}
		for _, id := range ids {
			assert.False(t, seen[id], "duplicate %q in %v", id, ids)
			seen[id] = true
		}
	}
}

func TestSelection_PersistsAndRestoresInOrder(t *testing.T) {
	store := storage.NewMemory()
	first := compare.NewSelection(store)
	first.Toggle("b")
	first.Toggle("a")

	raw, ok, err := store.Get(compare.SelectionKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["b","a"]`, raw)

	second := compare.NewSelection(store)
	assert.Equal(t, []string{"b", "a"}, second.IDs())
}

func TestSelection_ClearPersistsEmptyArray(t *testing.T) {
	store := storage.NewMemory()
	sel := compare.NewSelection(store)
	sel.Toggle("a")
	sel.Clear()

	raw, _, err := store.Get(compare.SelectionKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestSelection_MalformedStoredValueStartsEmpty(t *testing.T) {
	for _, raw := range []string{"{", `"a"`, `[1,2]`, `{"a":1}`} {
		store := storage.NewMemory()
		require.NoError(t, store.Set(compare.SelectionKey, raw))

		sel := compare.NewSelection(store)
		assert.Empty(t, sel.IDs(), "stored %q", raw)
	}
}

func TestSelection_RestoreDedupesAndTruncates(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(compare.SelectionKey, `["a","a","","b","c","d"]`))

	sel := compare.NewSelection(store)
	assert.Equal(t, []string{"a", "b", "c"}, sel.IDs())
}

func TestSelection_RestoreDropsUnknownIDs(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(compare.SelectionKey, `["pixel-8a","nokia-3310","iphone-15"]`))

	sel := compare.NewSelection(store, compare.WithKnownIDs(catalog.Known))
	assert.Equal(t, []string{"pixel-8a", "iphone-15"}, sel.IDs())
}

func TestSelection_StoreFailuresDegradeGracefully(t *testing.T) {
	sel := compare.NewSelection(failingStore{})
	assert.Empty(t, sel.IDs())

	assert.True(t, sel.Toggle("a"))
	assert.Equal(t, []string{"a"}, sel.IDs())
}

func TestSelection_NilStoreKeepsStateInMemory(t *testing.T) {
	inMemory := compare.NewSelection(nil)
	inMemory.Toggle("x")
	assert.Equal(t, []string{"x"}, inMemory.IDs())
}

func TestSelection_IDsReturnsCopy(t *testing.T) {
	sel := compare.NewSelection(storage.NewMemory())
	sel.Toggle("a")
	ids := sel.IDs()
	ids[0] = "mutated"

	assert.Equal(t, []string{"a"}, sel.IDs())
}
