package status

// Done marks that a value completed. DoneObject/DoneArray/CommaMatched
// record whether the terminating byte also closed the containing
// array/object or matched a separating comma — Number is the only
// status that can set these, since it (alone) doesn't have a
// dedicated terminator byte of its own and instead ends on the first
// byte that doesn't extend it (the "double-up" termination case).
type Done struct {
	DoneObject   bool
	DoneArray    bool
	CommaMatched bool
}

func (d *Done) AddChar(byte) (*Scalar, Status, error) {
	panic("streamjson/internal/status: AddChar called after Done")
}

func (d *Done) Flush() string { return "" }

func (d *Done) Finish() (*Scalar, error) {
	panic("streamjson/internal/status: Finish called after Done")
}
