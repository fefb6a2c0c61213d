package status

// None is the state before any byte of the root value has been
// consumed. It is never re-entered once a root value has started.
type None struct{}

// NewNone returns the initial status of a fresh parse.
func NewNone() *None { return &None{} }

func (n *None) AddChar(c byte) (*Scalar, Status, error) {
	switch {
	case isWhitespace(c):
		return nil, nil, nil
	case c == '"':
		return nil, NewString(false), nil
	case c == 'n':
		s, err := newNull(c)
		return nil, s, err
	case c == 't' || c == 'f':
		s, err := newBool(c)
		return nil, s, err
	case c == '-' || isDigit(c):
		s, err := newNumber(c)
		return nil, s, err
	case c == '{':
		return &Scalar{Kind: KindOpenObject}, NewObject(), nil
	case c == '[':
		return &Scalar{Kind: KindOpenArray}, NewArray(), nil
	default:
		return nil, nil, newError(ErrStructural, "top-level value is not valid JSON")
	}
}

func (n *None) Flush() string { return "" }

func (n *None) Finish() (*Scalar, error) { return nil, nil }
