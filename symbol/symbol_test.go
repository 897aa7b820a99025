package symbol_test

import (
	"testing"

	"github.com/katalvlaran/ctxfst/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTable_ReservesBlank verifies that a fresh table holds exactly
// the blank symbol at id 0.
func TestNewTable_ReservesBlank(t *testing.T) {
	tab := symbol.NewTable()

	assert.Equal(t, 1, tab.Len(), "fresh table holds only the blank")
	assert.Equal(t, symbol.BlankID, tab.Find(symbol.Blank), "blank must sit at id 0")

	tok, ok := tab.Token(symbol.BlankID)
	require.True(t, ok, "id 0 must be registered")
	assert.Equal(t, symbol.Blank, tok)
}

// TestTable_AddAndFind covers insertion order, idempotent Add, and the
// NotFound sentinel for missing tokens.
func TestTable_AddAndFind(t *testing.T) {
	tab := symbol.NewTable()

	idC := tab.Add("c")
	idA := tab.Add("a")
	assert.Equal(t, 1, idC, "first token after blank gets id 1")
	assert.Equal(t, 2, idA, "second token gets id 2")

	// Re-adding keeps the original id.
	assert.Equal(t, idC, tab.Add("c"), "Add must be idempotent")
	assert.Equal(t, 3, tab.Len())

	assert.Equal(t, idA, tab.Find("a"))
	assert.Equal(t, symbol.NotFound, tab.Find("t"), "missing token must yield NotFound")
}

// TestTableFromTokens checks bulk construction with duplicates.
func TestTableFromTokens(t *testing.T) {
	tab := symbol.TableFromTokens([]string{"c", "a", "t", "a"})

	assert.Equal(t, 4, tab.Len(), "duplicate keeps its first id, no new entry")
	assert.Equal(t, 1, tab.Find("c"))
	assert.Equal(t, 2, tab.Find("a"))
	assert.Equal(t, 3, tab.Find("t"))
}

// TestTable_TokenOutOfRange verifies Token's range checks.
func TestTable_TokenOutOfRange(t *testing.T) {
	tab := symbol.TableFromTokens([]string{"c"})

	_, ok := tab.Token(-1)
	assert.False(t, ok, "negative id is out of range")
	_, ok = tab.Token(tab.Len())
	assert.False(t, ok, "id past the table end is out of range")
}
