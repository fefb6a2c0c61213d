package status

// Null matches the four-byte literal "null" one byte at a time.
type Null struct {
	matched string
}

func newNull(first byte) (*Null, error) {
	n := &Null{}
	_, _, err := n.AddChar(first)
	return n, err
}

func (n *Null) AddChar(c byte) (*Scalar, Status, error) {
	switch n.matched {
	case "":
		if c != 'n' {
			return nil, nil, newError(ErrScalar, "invalid null literal")
		}
		n.matched = "n"
	case "n":
		if c != 'u' {
			return nil, nil, newError(ErrScalar, "invalid null literal")
		}
		n.matched = "nu"
	case "nu":
		if c != 'l' {
			return nil, nil, newError(ErrScalar, "invalid null literal")
		}
		n.matched = "nul"
	case "nul":
		if c != 'l' {
			return nil, nil, newError(ErrScalar, "invalid null literal")
		}
		return &Scalar{Kind: KindNull}, &Done{}, nil
	default:
		panic("streamjson/internal/status: Null over-consumed")
	}
	return nil, nil, nil
}

func (n *Null) Flush() string { return "" }

func (n *Null) Finish() (*Scalar, error) {
	return nil, newError(ErrScalar, "unexpected end of input inside null literal")
}
