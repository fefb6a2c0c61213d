package streamjson

// EventKind distinguishes the two lifecycle events a Parser fires for
// every element it enters or completes.
type EventKind int

const (
	// OnElementBegin fires when the mapper descends into a new array
	// element or object value, right after its first byte is consumed.
	OnElementBegin EventKind = iota
	// OnElementEnd fires when the mapper ascends back out of an
	// element, after its closing byte has been consumed.
	OnElementEnd
)

// EventHandler is called with the dotted path of the element that
// triggered it and a payload. OnElementBegin always passes nil, and so
// does OnElementEnd for an element outside the buffer whitelist.
// Otherwise OnElementEnd passes the decoded value of a scalar or
// string, and for an array or object the subtree the value buffer
// built for it (nil when buffering is off).
type EventHandler func(path string, value *Value)

// eventBinding pairs a key-path pattern with the handler to invoke
// when KeyPath.Match reports a hit.
type eventBinding struct {
	kind    EventKind
	pattern string
	handler EventHandler
}

// eventTable stores registered bindings and dispatches them against a
// KeyPath at a given instant. Bindings are tried in registration
// order; a path may trigger more than one.
type eventTable struct {
	bindings []eventBinding
}

func (t *eventTable) add(kind EventKind, pattern string, fn EventHandler) {
	t.bindings = append(t.bindings, eventBinding{kind: kind, pattern: pattern, handler: fn})
}

func (t *eventTable) dispatch(kind EventKind, path *KeyPath, value *Value) {
	for _, b := range t.bindings {
		if b.kind != kind {
			continue
		}
		if path.Match(b.pattern) {
			b.handler(path.Get(), value)
		}
	}
}
