package status

// Bool matches the literals "true" and "false" one byte at a time.
type Bool struct {
	matched string
}

func newBool(first byte) (*Bool, error) {
	b := &Bool{}
	_, _, err := b.AddChar(first)
	return b, err
}

func (b *Bool) AddChar(c byte) (*Scalar, Status, error) {
	switch b.matched {
	case "":
		switch c {
		case 't', 'f':
			b.matched = string(c)
			return nil, nil, nil
		}
	case "t":
		if c == 'r' {
			b.matched = "tr"
			return nil, nil, nil
		}
	case "tr":
		if c == 'u' {
			b.matched = "tru"
			return nil, nil, nil
		}
	case "tru":
		if c == 'e' {
			return &Scalar{Kind: KindBool, Bool: true}, &Done{}, nil
		}
	case "f":
		if c == 'a' {
			b.matched = "fa"
			return nil, nil, nil
		}
	case "fa":
		if c == 'l' {
			b.matched = "fal"
			return nil, nil, nil
		}
	case "fal":
		if c == 's' {
			b.matched = "fals"
			return nil, nil, nil
		}
	case "fals":
		if c == 'e' {
			return &Scalar{Kind: KindBool, Bool: false}, &Done{}, nil
		}
	}
	return nil, nil, newError(ErrScalar, "invalid boolean literal")
}

func (b *Bool) Flush() string { return "" }

func (b *Bool) Finish() (*Scalar, error) {
	return nil, newError(ErrScalar, "unexpected end of input inside boolean literal")
}
