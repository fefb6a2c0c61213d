package status

// Array tracks only whether the last non-whitespace byte consumed was
// a comma (or the opening bracket), which is enough to decide between
// "expect a value" and "expect comma or close".
type Array struct {
	commaMatched bool
}

// NewArray returns a status positioned right after the opening '['.
func NewArray() *Array {
	return &Array{commaMatched: true}
}

func (a *Array) AddChar(c byte) (*Scalar, Status, error) {
	if isWhitespace(c) {
		return nil, nil, nil
	}
	if c == ']' {
		return nil, &Done{}, nil
	}
	if !a.commaMatched {
		if c == ',' {
			a.commaMatched = true
			return nil, nil, nil
		}
		return nil, nil, newError(ErrStructural, "expected ',' or ']' in array")
	}
	if c == ',' {
		return nil, nil, newError(ErrStructural, "double comma inside array")
	}
	switch {
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
		return nil, nil, newError(ErrStructural, "invalid value in array")
	}
}

// AfterElement records that an element just completed, so the next
// non-whitespace byte must be ',' or ']'. Called by the mapper after
// popping a child node back into this array, including the
// number-triggered double-up where the child's own terminating byte
// already matched a comma or ']' without ever reaching this status.
func (a *Array) AfterElement(commaAlreadyMatched bool) {
	a.commaMatched = commaAlreadyMatched
}

func (a *Array) Flush() string { return "" }

func (a *Array) Finish() (*Scalar, error) {
	return nil, newError(ErrStructural, "unexpected end of input inside array")
}
