// File: types.go
// Role: SymbolTable type, constructors, and the add/find primitives.
// Concurrency: sync.RWMutex guards all fields; reads RLock, writes Lock,
// following the same split core.Graph uses for its own catalogs.

package symtab

import (
	"sort"
	"sync"
)

// NoSymbol is returned by FindKey when the symbol is absent, matching
// OpenFst's SymbolTable::kNoSymbol sentinel.
const NoSymbol int64 = -1

// SymbolTable maps between non-negative integer labels and strings.
// The zero value is not usable; construct with NewSymbolTable.
type SymbolTable struct {
	mu sync.RWMutex

	name         string
	symbolToKey  map[string]int64
	keyToSymbol  map[int64]string
	availableKey int64 // next key AddSymbol will assign

	checksumDirty bool
	checksumCache string
}

// NewSymbolTable creates an empty table with the given name (purely
// diagnostic; it has no effect on compatibility checks).
func NewSymbolTable(name string) *SymbolTable {
	return &SymbolTable{
		name:          name,
		symbolToKey:   make(map[string]int64),
		keyToSymbol:   make(map[int64]string),
		checksumDirty: true,
	}
}

// Name returns the table's diagnostic name.
func (t *SymbolTable) Name() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.name
}

// AddSymbol assigns symbol the next available key and returns it.
// Re-adding an already-present symbol returns its existing key without
// allocating a new one (idempotent, mirrors core.AddVertex).
// Complexity: O(1) amortized.
func (t *SymbolTable) AddSymbol(symbol string) (int64, error) {
	if symbol == "" {
		return NoSymbol, ErrEmptySymbol
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if key, ok := t.symbolToKey[symbol]; ok {
		return key, nil
	}
	key := t.availableKey
	t.insertLocked(symbol, key)
	return key, nil
}

// AddSymbolWithKey binds symbol to an explicit key. It is an error to
// bind the same key to two different symbols; re-binding a symbol to the
// same key it already has is a no-op.
// Complexity: O(1).
func (t *SymbolTable) AddSymbolWithKey(symbol string, key int64) error {
	if symbol == "" {
		return ErrEmptySymbol
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if existing, ok := t.keyToSymbol[key]; ok && existing != symbol {
		return ErrDuplicateKey
	}
	t.insertLocked(symbol, key)
	return nil
}

// insertLocked records the symbol/key pair and advances availableKey
// past it. Caller must hold t.mu.
func (t *SymbolTable) insertLocked(symbol string, key int64) {
	t.symbolToKey[symbol] = key
	t.keyToSymbol[key] = symbol
	if key >= t.availableKey {
		t.availableKey = key + 1
	}
	t.checksumDirty = true
}

// Find returns the symbol bound to key, or ("", false) if unbound.
// Complexity: O(1).
func (t *SymbolTable) Find(key int64) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.keyToSymbol[key]
	return s, ok
}

// FindKey returns the key bound to symbol, or (NoSymbol, false).
// Complexity: O(1).
func (t *SymbolTable) FindKey(symbol string) (int64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	k, ok := t.symbolToKey[symbol]
	return k, ok
}

// AvailableKey returns the next key AddSymbol would assign.
func (t *SymbolTable) AvailableKey() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.availableKey
}

// NumSymbols returns the number of distinct symbols currently bound.
func (t *SymbolTable) NumSymbols() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.symbolToKey)
}

// sortedKeys returns all bound keys in ascending order; used by both the
// checksum and the text writer to guarantee deterministic output.
// Caller must hold t.mu (read or write).
func (t *SymbolTable) sortedKeys() []int64 {
	keys := make([]int64, 0, len(t.keyToSymbol))
	for k := range t.keyToSymbol {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
