package streamjson

import "fmt"

// ValueBuffer mirrors the subset of a document that passes the buffer
// whitelist into an in-memory Value tree, tracking the mapper's
// current key path as a segment stack. Grounded on value_buffer.rs's
// root/pointer pair, generalized from its string-pointer-expression
// design to operate directly on Value containers instead of
// re-parsing a pointer string on every access.
type ValueBuffer struct {
	root    *Value
	segments []string
}

// NewValueBuffer returns a buffer positioned at the root, holding a
// JSON null until the first value is inserted.
func NewValueBuffer() *ValueBuffer {
	return &ValueBuffer{root: NewNull()}
}

// Root returns the buffered value tree.
func (b *ValueBuffer) Root() *Value {
	return b.root
}

func (b *ValueBuffer) resolve(segs []string) *Value {
	cur := b.root
	for _, seg := range segs {
		switch cur.Type() {
		case Array:
			idx, err := parseArrayIndex(seg)
			if err != nil {
				panic(fmt.Sprintf("streamjson: value buffer: %v", err))
			}
			cur = cur.Index(idx)
		case Object:
			cur = cur.Key(seg)
		default:
			panic("streamjson: value buffer attempted to descend into a scalar")
		}
	}
	return cur
}

func parseArrayIndex(seg string) (int, error) {
	if len(seg) == 0 {
		return 0, fmt.Errorf("empty array index segment")
	}
	n := 0
	for _, c := range seg {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-numeric array index segment %q", seg)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

// Descend places a placeholder child under the container currently at
// the buffer's position and moves the cursor down into it. For kind
// Array or Object the placeholder is an empty container of that kind,
// so its own children can be inserted directly; for any other kind it
// is a Null, later overwritten in place by Insert.
func (b *ValueBuffer) Descend(key string, kind Type) {
	parent := b.resolve(b.segments)

	var placeholder *Value
	switch kind {
	case Array:
		placeholder = NewArray()
	case Object:
		placeholder = NewObject()
	default:
		placeholder = NewNull()
	}

	switch parent.Type() {
	case Array:
		idx, err := parseArrayIndex(key)
		if err != nil {
			panic(fmt.Sprintf("streamjson: value buffer Descend: %v", err))
		}
		if idx != parent.Len() {
			panic("streamjson: value buffer Descend: array index out of sequence")
		}
		parent.Append(placeholder)
	case Object:
		parent.Set(key, placeholder)
	default:
		panic("streamjson: value buffer Descend: parent is not a container")
	}

	b.segments = append(b.segments, key)
}

// Up moves the cursor back to its parent. It is a no-op at the root.
func (b *ValueBuffer) Up() {
	if len(b.segments) == 0 {
		return
	}
	b.segments = b.segments[:len(b.segments)-1]
}

// Insert replaces the value at the buffer's current position in
// place. Used for completed scalars, and to materialize strings once
// Flush has accumulated all of their bytes.
func (b *ValueBuffer) Insert(v *Value) {
	if len(b.segments) == 0 {
		b.root = v
		return
	}
	parent := b.resolve(b.segments[:len(b.segments)-1])
	key := b.segments[len(b.segments)-1]
	switch parent.Type() {
	case Array:
		idx, err := parseArrayIndex(key)
		if err != nil {
			panic(fmt.Sprintf("streamjson: value buffer Insert: %v", err))
		}
		parent.setIndex(idx, v)
	case Object:
		parent.Set(key, v)
	default:
		panic("streamjson: value buffer Insert: parent is not a container")
	}
}

// Current returns the value presently at the buffer's cursor.
func (b *ValueBuffer) Current() *Value {
	return b.resolve(b.segments)
}
