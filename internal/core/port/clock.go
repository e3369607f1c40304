package port

import "time"

// Clock supplies "now". Every wall-clock read in the core goes through an
// injected Clock so ledger timestamps and analytics windows are
// deterministic under test.
type Clock interface {
	Now() time.Time
}
