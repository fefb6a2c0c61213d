package streamjson

import "fmt"

// refPrefix marks a forward-reference sentinel string: a value that
// hasn't been assigned a slot yet is emitted as this prefix followed
// by the slot's ref index, to be patched up by the receiver once the
// referenced slot is itself assigned.
const refPrefix = "$ke$"

const (
	opAssign = "="
	opAppend = "+="
)

// RefToken returns the forward-reference sentinel string for refIdx,
// suitable for embedding as a JSON string value inside a line emitted
// for a different slot.
func RefToken(refIdx uint64) string {
	return fmt.Sprintf("%s%d", refPrefix, refIdx)
}

// parentKey identifies where a new subnode or completed scalar lives
// relative to its parent: either an object field name or an array
// index. The zero value (isArrayIndex false, objectKey "") is only
// ever used together with isRoot, where no parent key applies.
type parentKey struct {
	isArrayIndex bool
	objectKey    string
}

func objectParentKey(key string) parentKey { return parentKey{objectKey: key} }
func arrayParentKey() parentKey             { return parentKey{isArrayIndex: true} }

// sink is the strategy interface the mapper emits wire rows through.
// Grounded on parser_output.rs's ParserOutputTrait: one implementation
// actually serializes protocol lines (streamOutputSink), the other is
// a no-op used when the caller only wants events and/or a buffered
// Value and never wants wire output (noOutputSink).
type sink interface {
	// onInit fires once, when the root node is installed. rootKind is
	// the type of the very first value committed; for containers and
	// strings it assigns the slot its empty-of-kind value, for
	// scalars it emits nothing (the scalar's own completion row is
	// the root's only row).
	onInit(rootRefIdx uint64, rootKind Type)
	// onNewSubnode fires when the mapper descends into a new string,
	// array or object child (never for null/bool/number children). It
	// both links the child into its parent (an append row carrying the
	// forward-reference sentinel) and assigns the child's own empty
	// initial value.
	onNewSubnode(parentRefIdx uint64, key parentKey, childRefIdx uint64, childKind Type)
	// onScalarComplete fires when a null/bool/number value finishes.
	// isRoot selects an assign row (top-level scalar) over an append
	// row (scalar nested in a container).
	onScalarComplete(parentRefIdx uint64, key parentKey, isRoot bool, jsonLiteral string)
	// onFlush fires with a fragment of string content as it is
	// decoded, and once more with the undrained remainder when the
	// string's closing quote arrives.
	onFlush(refIdx uint64, fragment string)
	// drain returns every row emitted since the last drain and resets
	// for the next call.
	drain() string
}

// noOutputSink discards everything. Used when a Parser is configured
// with no writer, e.g. when the caller only cares about event
// callbacks or the buffered Value.
type noOutputSink struct{}

func (noOutputSink) onInit(uint64, Type)                             {}
func (noOutputSink) onNewSubnode(uint64, parentKey, uint64, Type)     {}
func (noOutputSink) onScalarComplete(uint64, parentKey, bool, string) {}
func (noOutputSink) onFlush(uint64, string)                          {}
func (noOutputSink) drain() string                                   { return "" }

// streamOutputSink renders the KE wire protocol: one line per row,
// "<slot><op><payload>\n", where op is "=" for an assignment and "+="
// for an append. Grounded on stream_protocol_output.rs's
// STREAM_VAR_PREFIX/OPERATOR_ASSIGN/OPERATOR_APPEND/make_row.
type streamOutputSink struct {
	buf []byte
}

func newStreamOutputSink() *streamOutputSink {
	return &streamOutputSink{}
}

func emptyLiteralFor(kind Type) (string, bool) {
	switch kind {
	case Array:
		return "[]", true
	case Object:
		return "{}", true
	case String:
		return `""`, true
	default:
		return "", false
	}
}

func (s *streamOutputSink) onInit(rootRefIdx uint64, rootKind Type) {
	if literal, ok := emptyLiteralFor(rootKind); ok {
		s.emit(rootRefIdx, opAssign, literal)
	}
}

func (s *streamOutputSink) onNewSubnode(parentRefIdx uint64, key parentKey, childRefIdx uint64, childKind Type) {
	ref := quoteJSONString(RefToken(childRefIdx))
	if key.isArrayIndex {
		s.emit(parentRefIdx, opAppend, ref)
	} else {
		s.emit(parentRefIdx, opAppend, fmt.Sprintf("{%s:%s}", quoteJSONString(key.objectKey), ref))
	}
	if literal, ok := emptyLiteralFor(childKind); ok {
		s.emit(childRefIdx, opAssign, literal)
	}
}

func (s *streamOutputSink) onScalarComplete(parentRefIdx uint64, key parentKey, isRoot bool, jsonLiteral string) {
	if isRoot {
		s.emit(parentRefIdx, opAssign, jsonLiteral)
		return
	}
	if key.isArrayIndex {
		s.emit(parentRefIdx, opAppend, jsonLiteral)
	} else {
		s.emit(parentRefIdx, opAppend, fmt.Sprintf("{%s:%s}", quoteJSONString(key.objectKey), jsonLiteral))
	}
}

func (s *streamOutputSink) onFlush(refIdx uint64, fragment string) {
	if fragment == "" {
		return
	}
	s.emit(refIdx, opAppend, quoteJSONString(fragment))
}

func (s *streamOutputSink) emit(refIdx uint64, op, payload string) {
	s.buf = append(s.buf, fmt.Sprintf("%d%s%s\n", refIdx, op, payload)...)
}

// drain returns every protocol row buffered since the last drain and
// resets the internal buffer. The mapper calls this once per AddChar
// to produce that call's return value.
func (s *streamOutputSink) drain() string {
	out := string(s.buf)
	s.buf = s.buf[:0]
	return out
}
