// File: checksum.go
// Role: labeled checksum and the CompatSymbols compatibility check
// consumed by compose when validating the composition boundary.

package symtab

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// compatCheckEnabled is the package-wide switch mirroring OpenFst's
// FLAGS_fst_compat_symbols: CompatSymbols short-circuits to true while
// this is false. Exposed via SetCompatCheckEnabled rather than a bare
// package variable so every toggle site is grep-able.
var compatCheckEnabled = true

// SetCompatCheckEnabled globally enables or disables the symbol-table
// compatibility check performed by CompatSymbols. Enabled by default,
// matching OpenFst's default.
func SetCompatCheckEnabled(enabled bool) { compatCheckEnabled = enabled }

// LabeledChecksum returns a label-dependent MD5 fingerprint over the
// table's (key, symbol) pairs in ascending key order. Two tables are
// compatible (see CompatSymbols) iff their LabeledChecksum values match.
// Complexity: O(n log n) for the key sort plus O(total symbol bytes).
func (t *SymbolTable) LabeledChecksum() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.checksumDirty {
		return t.checksumCache
	}
	h := md5.New()
	for _, key := range t.sortedKeys() {
		fmt.Fprintf(h, "%d:%s;", key, t.keyToSymbol[key])
	}
	t.checksumCache = hex.EncodeToString(h.Sum(nil))
	t.checksumDirty = false
	return t.checksumCache
}

// CompatSymbols reports whether syms1 and syms2 are compatible: nil for
// either side is always compatible (an automaton with no symbol table
// imposes no constraint), and two non-nil tables are compatible iff
// their LabeledChecksum values are equal. If SetCompatCheckEnabled(false)
// was called, this always returns true.
func CompatSymbols(syms1, syms2 *SymbolTable) bool {
	if !compatCheckEnabled {
		return true
	}
	if syms1 == nil || syms2 == nil {
		return true
	}
	return syms1.LabeledChecksum() == syms2.LabeledChecksum()
}
