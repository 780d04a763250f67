package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. ULIDs identify requests, simulation
// runs, and saved rule sets; their lexicographic order follows creation
// time, which the history API relies on for oldest-first listings.
var NewULID = func() string {
	return ulid.Make().String()
}
