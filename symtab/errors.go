package symtab

import "errors"

// ErrEmptySymbol indicates AddSymbol was called with the empty string.
var ErrEmptySymbol = errors.New("symtab: symbol is empty")

// ErrDuplicateKey indicates AddSymbolWithKey was given a key already
// bound to a different symbol.
var ErrDuplicateKey = errors.New("symtab: key already bound to a different symbol")

// ErrMalformedText indicates a text-format line did not parse as
// "symbol<sep>key".
var ErrMalformedText = errors.New("symtab: malformed text entry")

// ErrNegativeKey indicates a negative key was read from text form while
// negative keys were not explicitly allowed.
var ErrNegativeKey = errors.New("symtab: negative key not allowed")
