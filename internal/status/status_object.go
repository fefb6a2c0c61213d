package status

type objectSubStatus int

const (
	objectBeforeKV objectSubStatus = iota
	objectBetweenKV
)

// Object alternates between "expecting a key" (BeforeKV) and
// "expecting a colon then a value" (BetweenKV). Each sub-state also
// tracks whether its separator (comma, colon) has already been seen.
type Object struct {
	sub          objectSubStatus
	commaMatched bool
	colonMatched bool
	// fresh is true until the first key closes, so '}' right after '{'
	// closes an empty object.
	fresh bool
}

// NewObject returns a status positioned right after the opening '{'.
func NewObject() *Object {
	return &Object{sub: objectBeforeKV, commaMatched: true, fresh: true}
}

func (o *Object) AddChar(c byte) (*Scalar, Status, error) {
	if o.sub == objectBeforeKV {
		return o.addCharBeforeKV(c)
	}
	return o.addCharBetweenKV(c)
}

func (o *Object) addCharBeforeKV(c byte) (*Scalar, Status, error) {
	if isWhitespace(c) {
		return nil, nil, nil
	}
	switch c {
	case '"':
		return nil, NewString(true), nil
	case ',':
		if o.commaMatched {
			return nil, nil, newError(ErrStructural, "double comma inside object")
		}
		o.commaMatched = true
		return nil, nil, nil
	case '}':
		if o.commaMatched && !o.fresh {
			return nil, nil, newError(ErrStructural, "closing bracket after a comma in object")
		}
		return nil, &Done{}, nil
	default:
		return nil, nil, newError(ErrStructural, "expected a key in object")
	}
}

func (o *Object) addCharBetweenKV(c byte) (*Scalar, Status, error) {
	if isWhitespace(c) {
		return nil, nil, nil
	}
	if !o.colonMatched {
		if c == ':' {
			o.colonMatched = true
			return nil, nil, nil
		}
		return nil, nil, newError(ErrStructural, "expected ':' in object")
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
		return nil, nil, newError(ErrStructural, "object does not have a valid value")
	}
}

// AfterKey records that a key just closed, moving to BetweenKV.
func (o *Object) AfterKey() {
	o.sub = objectBetweenKV
	o.colonMatched = false
	o.fresh = false
}

// AfterValue records that a value just completed, moving back to
// BeforeKV. commaAlreadyMatched is set by the mapper when the value's
// own terminating byte already matched a comma (the number-triggered
// double-up), so this status doesn't expect to see that byte itself.
// A terminating '}' is not reported here: the mapper pops the object
// directly instead.
func (o *Object) AfterValue(commaAlreadyMatched bool) {
	o.sub = objectBeforeKV
	o.commaMatched = commaAlreadyMatched
}

func (o *Object) Flush() string { return "" }

func (o *Object) Finish() (*Scalar, error) {
	return nil, newError(ErrStructural, "unexpected end of input inside object")
}
