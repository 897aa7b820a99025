// Package symbol provides the read-only token vocabulary shared by the
// context-graph builder and matcher.
//
// A Table maps token strings to dense non-negative integer ids. Id 0 is
// always the reserved blank/epsilon symbol; a failed lookup is reported
// with the NotFound sentinel rather than an error, matching the symbol
// table conventions of speech decoders.
//
// A Table is mutable while it is being populated. Once shared with a
// builder it must be treated as frozen: Find, Token and Len are safe for
// unsynchronized concurrent use only in the absence of concurrent Add
// calls.
package symbol

const (
	// BlankID is the reserved id of the blank/epsilon symbol.
	BlankID = 0

	// NotFound is returned by Find when a token is not in the table.
	NotFound = -1
)

// Blank is the conventional spelling of the reserved blank symbol.
const Blank = "<blank>"

// Table maps token strings to dense integer ids, with id 0 reserved for
// the blank symbol.
type Table struct {
	ids    map[string]int
	tokens []string
}

// NewTable returns a Table containing only the blank symbol at id 0.
func NewTable() *Table {
	t := &Table{
		ids:    make(map[string]int),
		tokens: make([]string, 0, 1),
	}
	t.ids[Blank] = BlankID
	t.tokens = append(t.tokens, Blank)

	return t
}

// TableFromTokens builds a Table assigning ids 1..n to tokens in input
// order. Duplicate tokens keep their first id.
func TableFromTokens(tokens []string) *Table {
	t := NewTable()
	for _, tok := range tokens {
		t.Add(tok)
	}

	return t
}

// Add inserts token and returns its id. Adding a token that is already
// present returns the id it was first assigned.
func (t *Table) Add(token string) int {
	if id, ok := t.ids[token]; ok {
		return id
	}
	id := len(t.tokens)
	t.ids[token] = id
	t.tokens = append(t.tokens, token)

	return id
}

// Find returns the id of token, or NotFound if token is absent.
func (t *Table) Find(token string) int {
	if id, ok := t.ids[token]; ok {
		return id
	}

	return NotFound
}

// Token returns the string registered at id and whether id is in range.
func (t *Table) Token(id int) (string, bool) {
	if id < 0 || id >= len(t.tokens) {
		return "", false
	}

	return t.tokens[id], true
}

// Len reports the number of registered symbols, including the blank.
func (t *Table) Len() int {
	return len(t.tokens)
}
