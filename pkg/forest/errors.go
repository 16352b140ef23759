package forest

import "errors"

// Construction errors. Once a forest is constructed its operations are
// total: inserts, deletes and scans never fail.
var (
	ErrNoDefaults     = errors.New("forest: at least one default-materialized order is required")
	ErrNotPermutation = errors.New("forest: order positions are not a permutation of {0,1,2,3}")
	ErrDuplicateOrder = errors.New("forest: duplicate order")
)
