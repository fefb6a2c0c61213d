package streamjson

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/mcvoid/streamjson/internal/status"
)

// Parser is the byte-at-a-time mapper: it owns the key-path cursor,
// the node table, the current status machine position, the event
// table, an optional value buffer, filter configuration, and the
// protocol emitter. Grounded on
// json_stream_parser/partial_json_mapper.rs::PartialJsonMapper.
type Parser struct {
	keyPath     KeyPath
	refGen      RefIndexGenerator
	rootRefIdx  uint64
	nodes       map[uint64]*node
	currentIdx  uint64
	cur         status.Status
	events      eventTable
	done        bool
	stringAccum string
	buffer      *ValueBuffer
	options     ParserOptions
	sink        sink
}

func newParser(refGen RefIndexGenerator, rootRefIdx uint64, enableBuffer bool, opts ParserOptions, sk sink) *Parser {
	var buf *ValueBuffer
	if enableBuffer {
		buf = NewValueBuffer()
	}
	return &Parser{
		refGen:     refGen,
		rootRefIdx: rootRefIdx,
		nodes:      make(map[uint64]*node),
		cur:        status.NewNone(),
		buffer:     buf,
		options:    opts,
		sink:       sk,
	}
}

// NewParser returns a Parser that emits the KE wire protocol. rootRefIdx
// is the slot the root value is assigned; callers that want the
// conventional numbering generate it themselves from refGen before
// calling NewParser (refGen.Generate() for a parser rooted alone, or a
// value already claimed from a generator shared with other components).
func NewParser(refGen RefIndexGenerator, rootRefIdx uint64, enableBuffer bool, opts ParserOptions) *Parser {
	return newParser(refGen, rootRefIdx, enableBuffer, opts, newStreamOutputSink())
}

// NewParserNoOutput returns a Parser that never emits wire protocol
// text, for callers who only want events and/or the buffered Value.
func NewParserNoOutput(refGen RefIndexGenerator, rootRefIdx uint64, enableBuffer bool, opts ParserOptions) *Parser {
	return newParser(refGen, rootRefIdx, enableBuffer, opts, noOutputSink{})
}

// SetOptions replaces the parser's filter configuration. Must be
// called before descending past any node the caller intends to
// filter — whitelist checks happen once, on descent.
func (p *Parser) SetOptions(opts ParserOptions) {
	p.options = opts
}

// AddEventHandler registers fn to run whenever pattern matches the
// current key path at the given lifecycle point.
func (p *Parser) AddEventHandler(kind EventKind, pattern string, fn EventHandler) {
	p.events.add(kind, pattern, fn)
}

// WithEventHandler is the builder form of AddEventHandler.
func (p *Parser) WithEventHandler(kind EventKind, pattern string, fn EventHandler) *Parser {
	p.AddEventHandler(kind, pattern, fn)
	return p
}

// GetBufferedData returns the buffered value tree, or nil if
// buffering wasn't enabled.
func (p *Parser) GetBufferedData() *Value {
	if p.buffer == nil {
		return nil
	}
	return p.buffer.Root()
}

// TakeBufferedData returns the buffered value tree and resets the
// buffer to a fresh null root, or nil if buffering wasn't enabled.
func (p *Parser) TakeBufferedData() *Value {
	if p.buffer == nil {
		return nil
	}
	v := p.buffer.Root()
	p.buffer = NewValueBuffer()
	return v
}

// AddChar feeds one byte and returns any wire protocol text produced.
func (p *Parser) AddChar(b byte) (string, error) {
	if p.done {
		return "", nil
	}
	_, wasNone := p.cur.(*status.None)
	carry, next, err := p.cur.AddChar(b)
	if err != nil {
		return "", p.wrapError(err, b)
	}
	if next == nil {
		return "", nil
	}
	switch {
	case wasNone:
		p.installRoot(carry, next)
	default:
		if done, isDone := next.(*status.Done); isDone {
			p.completeValue(carry, done)
		} else {
			p.descendInto(next)
		}
	}
	return p.sink.drain(), nil
}

// Flush requests best-effort partial emission of the in-progress
// string, if any.
func (p *Parser) Flush() string {
	frag := p.cur.Flush()
	if frag != "" {
		p.stringAccum += frag
	}
	if n, ok := p.nodes[p.currentIdx]; !ok || !n.ignoreOutput {
		p.sink.onFlush(p.currentIdx, frag)
	}
	return p.sink.drain()
}

// Finish declares no more input is coming, finalizing any lingering
// status (only Number needs this: a lone top-level number never sees
// a terminating byte).
func (p *Parser) Finish() {
	if p.done {
		return
	}
	carry, err := p.cur.Finish()
	if err != nil {
		log.Error().Err(err).Msg("streamjson: error finalizing parser")
		return
	}
	if carry == nil {
		return
	}
	p.completeValue(carry, &status.Done{})
}

func (p *Parser) wrapError(err error, b byte) error {
	if se, ok := err.(*status.Error); ok {
		return NewParseError(ErrorKind(se.Kind), se.Msg+" (byte '"+EscapeByte(b)+"')")
	}
	return fmt.Errorf("%w: %v", ErrParse, err)
}

// installRoot handles the (None, next) transition: the very first
// non-whitespace byte of the document.
func (p *Parser) installRoot(_ *status.Scalar, next status.Status) {
	refIdx := p.rootRefIdx
	kind := typeOfStatus(next)
	rootNode := newRootNode(nodeKindOfStatus(next))
	if rootNode.kind != nodeBasic {
		rootNode.containerStatus = next
	}
	p.nodes[refIdx] = rootNode
	p.currentIdx = refIdx
	p.cur = next
	p.sink.onInit(refIdx, kind)
	if p.buffer != nil {
		p.buffer.Insert(rootSeedValue(kind))
	}
}

func rootSeedValue(kind Type) *Value {
	switch kind {
	case Array:
		return NewArray()
	case Object:
		return NewObject()
	case String:
		return NewString("")
	default:
		return NewNull()
	}
}

// descendInto handles the (container, new-status) transition: the
// mapper's current status is an Array or Object and the byte just
// opened a new child value.
func (p *Parser) descendInto(next status.Status) {
	parentIdx := p.currentIdx
	parent := p.nodes[parentIdx]

	var key string
	var isKeyString bool
	switch parent.kind {
	case nodeObject:
		if !parent.hasPending {
			// Parsing the object's own key: allocate a silent child
			// node but do not touch the key path, filters, events, or
			// emission — the key handling corner case.
			isKeyString = true
		} else {
			key = parent.pendingKey
		}
	case nodeArray:
		key = strconv.Itoa(parent.nextIndex)
		parent.nextIndex++
	default:
		panic("streamjson: descent into a non-container node")
	}

	childRefIdx := p.refGen.Generate()
	childKind := nodeKindOfStatus(next)
	childType := typeOfStatus(next)

	childNode := &node{parentIdx: parentIdx, kind: childKind}
	if childKind != nodeBasic {
		childNode.containerStatus = next
	}

	if isKeyString {
		p.stringAccum = ""
		p.nodes[childRefIdx] = childNode
		p.currentIdx = childRefIdx
		p.cur = next
		return
	}

	p.keyPath.Descend(key)
	outputAllowed, bufferAllowed := true, true
	if !parent.ignoreOutput {
		outputAllowed = p.options.allowsOutput(&p.keyPath)
	}
	if !parent.ignoreBuffer {
		bufferAllowed = p.options.allowsBuffer(&p.keyPath)
	}
	childNode.ignoreOutput, childNode.ignoreBuffer = parent.childFlags(outputAllowed, bufferAllowed)
	p.nodes[childRefIdx] = childNode

	var pk parentKey
	if parent.kind == nodeArray {
		pk = arrayParentKey()
	} else {
		pk = objectParentKey(key)
	}

	if !p.events.bindingsEmpty() {
		p.events.dispatch(OnElementBegin, &p.keyPath, nil)
	}
	if _, ok := next.(*status.String); ok {
		p.stringAccum = ""
	}

	if p.buffer != nil && !childNode.ignoreBuffer {
		p.buffer.Descend(key, childType)
	}

	p.currentIdx = childRefIdx
	p.cur = next

	// A pure scalar child (null/bool/number) gets no entry row at all:
	// its own ref index goes unused and the only row it ever produces
	// is its completion row once the value finishes. Only a container
	// or string child needs a forward-reference row now, since its
	// children may start arriving before it is itself complete.
	if !childNode.ignoreOutput {
		if _, isSubnode := emptyLiteralFor(childType); isSubnode {
			p.sink.onNewSubnode(parentIdx, pk, childRefIdx, childType)
		}
	}
}

// completeValue handles the (any, Done) transition: the current
// status just produced a finished value. done.DoneObject/DoneArray
// signal the "double-up" case where the terminating byte (only
// possible for Number) also closed the containing array/object; after
// finishing the normal pop, the container itself is popped a second
// time as if it had received that closing byte directly, to keep the
// key path and node table in sync with how many containers are
// actually still open.
func (p *Parser) completeValue(carry *status.Scalar, done *status.Done) {
	finishedIdx := p.currentIdx
	finishedNode := p.nodes[finishedIdx]
	delete(p.nodes, finishedIdx)

	if carry != nil && carry.Kind == status.KindString {
		// carry.Str is only the remainder never drained by Flush; the
		// accumulator holds everything flushed so far.
		p.stringAccum += carry.Str
	}

	if finishedNode.parentIdx == 0 {
		// No parent: this was the root value.
		p.done = true
		p.emitRootCompletion(finishedIdx, carry)
		return
	}

	parentIdx := finishedNode.parentIdx
	parent := p.nodes[parentIdx]
	p.currentIdx = parentIdx

	switch parent.kind {
	case nodeObject:
		if !parent.hasPending {
			// Returning from the key string: stash the key text and
			// wait for its value. No emission, no key-path movement.
			keyText := ""
			if carry != nil {
				keyText = carry.Str
			}
			p.stringAccum = ""
			parent.pendingKey = keyText
			parent.hasPending = true
			parent.containerStatus.(*status.Object).AfterKey()
			p.cur = parent.containerStatus
			return
		}
		p.completeContainerChild(finishedNode, finishedIdx, parentIdx, objectParentKey(parent.pendingKey), carry)
		parent.pendingKey = ""
		parent.hasPending = false
		parent.containerStatus.(*status.Object).AfterValue(done.CommaMatched)
		p.cur = parent.containerStatus
	case nodeArray:
		p.completeContainerChild(finishedNode, finishedIdx, parentIdx, arrayParentKey(), carry)
		parent.containerStatus.(*status.Array).AfterElement(done.CommaMatched)
		p.cur = parent.containerStatus
	default:
		panic("streamjson: non-container parent in completeValue")
	}

	if done.DoneObject || done.DoneArray {
		p.completeValue(nil, &status.Done{})
	}
}

func (p *Parser) emitRootCompletion(refIdx uint64, carry *status.Scalar) {
	var remainder string
	if carry != nil {
		remainder = carry.Str
	}
	p.onValueCompleted(carry)
	p.fireElementEnd(carry, false)
	if carry == nil {
		return
	}
	switch carry.Kind {
	case status.KindString:
		p.sink.onFlush(refIdx, remainder)
	case status.KindNull, status.KindBool, status.KindInteger, status.KindNumber:
		p.sink.onScalarComplete(refIdx, parentKey{}, true, jsonLiteralFromScalar(carry))
	}
}

func (p *Parser) completeContainerChild(finished *node, finishedIdx uint64, parentIdx uint64, key parentKey, carry *status.Scalar) {
	ignoreOutput := finished.ignoreOutput
	ignoreBuffer := finished.ignoreBuffer
	var remainder string
	if carry != nil {
		remainder = carry.Str
	}

	if !ignoreBuffer {
		p.onValueCompleted(carry)
	}

	p.fireElementEnd(carry, ignoreBuffer)
	p.keyPath.Ascend()
	if p.buffer != nil && !ignoreBuffer {
		p.buffer.Up()
	}

	if ignoreOutput || carry == nil {
		return
	}
	switch carry.Kind {
	case status.KindString:
		p.sink.onFlush(finishedIdx, remainder)
	case status.KindNull, status.KindBool, status.KindInteger, status.KindNumber:
		p.sink.onScalarComplete(parentIdx, key, false, jsonLiteralFromScalar(carry))
	}
}

// fireElementEnd dispatches OnElementEnd (preferring the accumulated
// string text over the status's own carried value, since a flushed
// string's carry only ever holds its unflushed remainder) and clears
// the accumulator for the next string. An element filtered out of the
// buffer gets a nil payload.
func (p *Parser) fireElementEnd(carry *status.Scalar, filtered bool) {
	defer func() { p.stringAccum = "" }()
	if p.events.bindingsEmpty() {
		return
	}
	var value *Value
	switch {
	case filtered:
	case p.stringAccum != "" || (carry != nil && carry.Kind == status.KindString):
		value = NewString(p.stringAccum)
	case carry != nil:
		value = valueFromScalar(carry)
	case p.buffer != nil:
		// Container completing (carry is nil for Array/Object Done):
		// hand back the tree the buffer already built for it.
		value = p.buffer.Current()
	}
	p.events.dispatch(OnElementEnd, &p.keyPath, value)
}

func (p *Parser) onValueCompleted(carry *status.Scalar) {
	if p.buffer == nil || carry == nil {
		return
	}
	if carry.Kind == status.KindString {
		p.buffer.Insert(NewString(p.stringAccum))
		return
	}
	p.buffer.Insert(valueFromScalar(carry))
}

func (t *eventTable) bindingsEmpty() bool {
	return len(t.bindings) == 0
}

func typeOfStatus(s status.Status) Type {
	switch s.(type) {
	case *status.Object:
		return Object
	case *status.Array:
		return Array
	case *status.String:
		return String
	default:
		return Null
	}
}

func nodeKindOfStatus(s status.Status) nodeKind {
	switch s.(type) {
	case *status.Object:
		return nodeObject
	case *status.Array:
		return nodeArray
	default:
		return nodeBasic
	}
}

func valueFromScalar(s *status.Scalar) *Value {
	switch s.Kind {
	case status.KindNull:
		return NewNull()
	case status.KindBool:
		return NewBool(s.Bool)
	case status.KindInteger:
		return NewInteger(s.Integer)
	case status.KindNumber:
		return NewNumber(s.Number)
	case status.KindString:
		return NewString(s.Str)
	default:
		return NewNull()
	}
}

func jsonLiteralFromScalar(s *status.Scalar) string {
	return valueFromScalar(s).String()
}
