package compose

import "errors"

// ErrMissingIdentities indicates Options.One or Options.Zero was not
// supplied; the engine is generic over semirings and has no way to
// conjure a Weight value of its own. NewFst and Compose also return it
// when either operand is nil.
var ErrMissingIdentities = errors.New("compose: Options.One and Options.Zero are required")
