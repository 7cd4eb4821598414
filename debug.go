package easel

import (
	"fmt"
	"os"
)

// Debug enables diagnostic logging to stderr. Recoverable per-call failures
// (a frame that could not be packed, a skipped translator frame) are logged
// here instead of surfacing to the user.
var Debug bool

func debugf(format string, args ...any) {
	if !Debug {
		return
	}
	fmt.Fprintf(os.Stderr, "[easel] "+format+"\n", args...)
}
