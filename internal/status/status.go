// Package status implements the per-byte pushdown state machine that
// drives streamjson's parser: one concrete Status per JSON value kind,
// each consuming one byte at a time and reporting whether it absorbed
// the byte silently, completed a value, or needs more.
//
// This package is deliberately independent of the streamjson package
// itself (it has no notion of node tables, key paths, or the wire
// protocol) so that its state machine can be tested and reasoned
// about in isolation; the parser in streamjson translates Scalar
// carries into streamjson.Value and Error into streamjson.ParseError.
package status

// Kind classifies the payload a Scalar carries.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindNumber
	KindString
	// KindOpenObject and KindOpenArray are carried once, by the status
	// that opens a container, to signal "seed this slot with an empty
	// object/array"; they never appear on a Done completion.
	KindOpenObject
	KindOpenArray
)

// Scalar is the value a Status hands back to the caller, either when
// opening a container (KindOpenObject/KindOpenArray) or when a scalar
// value completes (every other Kind).
type Scalar struct {
	Kind    Kind
	Bool    bool
	Integer int64
	Number  float64
	Str     string
}

// Status is one node of the pushdown machine. AddChar consumes one
// byte and returns:
//   - (nil, nil, nil) if the byte was absorbed with no visible change;
//   - (carry, next, nil) if the byte opened a new value (carry non-nil
//     only for objects/arrays) or completed the current one (next is
//     a *Done);
//   - (nil, nil, err) if the byte is not valid in the current state.
type Status interface {
	AddChar(c byte) (*Scalar, Status, error)
	// Flush returns the longest safely-emittable fragment of this
	// status's in-progress buffer, draining it; only String overrides
	// this meaningfully.
	Flush() string
	// Finish is called when no more bytes are coming. Number finalizes
	// its lingering buffer, None reports nil, Done panics, and every
	// other status reports an unexpected-end-of-input error.
	Finish() (*Scalar, error)
}

// ErrKind classifies why AddChar or Finish rejected a byte, mirrored
// by streamjson.ErrorKind so the mapper can translate without losing
// information.
type ErrKind int

const (
	ErrStructural ErrKind = iota
	ErrScalar
	ErrUTF8
)

// Error is the error type every Status returns. The mapper wraps it
// into a streamjson.ParseError carrying the equivalent Kind.
type Error struct {
	Kind ErrKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func newError(kind ErrKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
