package streamjson

// RefIndexGenerator yields distinct non-zero integers in increasing
// order. It is the sole source of node IDs used in the wire protocol.
//
// A RefIndexGenerator is cheap to copy: copies share the same
// underlying counter, so several parsers or chunkers can cooperate to
// produce disjoint slot IDs. It is not safe for concurrent use —
// callers must guarantee serial access, or wrap it in a mutex
// themselves.
type RefIndexGenerator struct {
	counter *uint64
}

// NewRefIndexGenerator returns a generator whose first Generate() call
// returns 1.
func NewRefIndexGenerator() RefIndexGenerator {
	var c uint64
	return RefIndexGenerator{counter: &c}
}

// Generate returns the next distinct index.
func (g RefIndexGenerator) Generate() uint64 {
	*g.counter++
	return *g.counter
}
