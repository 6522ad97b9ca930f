// File: text.go
// Role: the text symbol-table form: tab-separated "symbol<sep>key"
// lines, one per entry, in ascending key order. Binary serialization is
// an external collaborator's concern.

package symtab

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// defaultFieldSeparator is used by WriteText/ReadText when the caller
// does not override it.
const defaultFieldSeparator = "\t"

// TextOptions configures the text form's field separator and whether
// negative keys are accepted on read, mirroring OpenFst's
// SymbolTableTextOptions.
type TextOptions struct {
	// FieldSeparator is the set of characters that delimit symbol and
	// key on each line: WriteText writes the whole string between them,
	// and ReadText treats any run of these characters as one delimiter.
	// Empty means defaultFieldSeparator ("\t").
	FieldSeparator string
	// AllowNegative permits keys < 0 when reading; otherwise ReadText
	// rejects them with ErrNegativeKey.
	AllowNegative bool
}

func (o TextOptions) separator() string {
	if o.FieldSeparator == "" {
		return defaultFieldSeparator
	}
	return o.FieldSeparator
}

// WriteText writes one "symbol<sep>key" line per bound entry, in
// ascending key order, for deterministic diffs.
// Complexity: O(n log n).
func (t *SymbolTable) WriteText(w io.Writer, opts TextOptions) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	sep := opts.separator()
	bw := bufio.NewWriter(w)
	for _, key := range t.sortedKeys() {
		if _, err := fmt.Fprintf(bw, "%s%s%d\n", t.keyToSymbol[key], sep, key); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadText parses the text form produced by WriteText into a fresh,
// named SymbolTable. Blank lines are skipped; any other line that does
// not split into exactly a symbol and an integer key is
// ErrMalformedText.
// Complexity: O(n) in the input size.
func ReadText(r io.Reader, name string, opts TextOptions) (*SymbolTable, error) {
	sep := opts.separator()
	table := NewSymbolTable(name)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool { return strings.ContainsRune(sep, r) })
		if len(fields) != 2 {
			return nil, fmt.Errorf("symtab: ReadText: %q: %w", line, ErrMalformedText)
		}
		symbol, keyStr := fields[0], fields[1]
		key, err := strconv.ParseInt(keyStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("symtab: ReadText: %q: %w", line, ErrMalformedText)
		}
		if key < 0 && !opts.AllowNegative {
			return nil, fmt.Errorf("symtab: ReadText: %q: %w", line, ErrNegativeKey)
		}
		if err := table.AddSymbolWithKey(symbol, key); err != nil {
			return nil, fmt.Errorf("symtab: ReadText: %q: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}
