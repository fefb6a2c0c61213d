package chunk

import (
	"strconv"

	"github.com/mcvoid/streamjson"
)

// GrowingTreeChunker replays a complete Value as a monotonically
// growing sequence of partial values: each call to the returned
// iterator's Next adds exactly one unit of content (one array
// element, one object field, or one grapheme-budget's worth of string
// text) to a clone that starts empty and ends identical to source.
// Grounded on json_growing_tree_chunker.rs.
type GrowingTreeChunker struct {
	source *streamjson.Value
}

// NewGrowingTreeChunker returns a chunker over source. source is never
// mutated.
func NewGrowingTreeChunker(source *streamjson.Value) *GrowingTreeChunker {
	return &GrowingTreeChunker{source: source}
}

// Chunks returns an iterator that grows its current snapshot by about
// bufSize bytes of string content per step, rounded up to a whole
// grapheme cluster (array/object steps always add exactly one element
// regardless of bufSize).
func (c *GrowingTreeChunker) Chunks(bufSize int) *GrowingTreeChunkIter {
	return &GrowingTreeChunkIter{
		source:  c.source,
		current: initCopy(c.source),
		bufSize: bufSize,
	}
}

// GrowingTreeChunkIter is the stateful cursor driving one growing-tree
// traversal. It is not safe for concurrent use.
type GrowingTreeChunkIter struct {
	source  *streamjson.Value
	current *streamjson.Value
	pointer streamjson.ValuePointer
	bufSize int
}

// initCopy returns the empty-of-kind seed for v: containers start
// with no children and strings start empty, everything else is
// already fully known so it is cloned outright.
func initCopy(v *streamjson.Value) *streamjson.Value {
	switch v.Type() {
	case streamjson.String:
		return streamjson.NewString("")
	case streamjson.Array:
		return streamjson.NewArray()
	case streamjson.Object:
		return streamjson.NewObject()
	default:
		return v.Clone()
	}
}

func resolve(root *streamjson.Value, segments []string) *streamjson.Value {
	cur := root
	for _, seg := range segments {
		switch cur.Type() {
		case streamjson.Array:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				panic("streamjson/chunk: non-numeric array segment " + seg)
			}
			cur = cur.Index(idx)
		case streamjson.Object:
			cur = cur.Key(seg)
		default:
			panic("streamjson/chunk: pointer descends into a scalar")
		}
	}
	return cur
}

// Next returns the next, larger snapshot of the growing value and
// true, or (nil, false) once current has fully caught up to source.
// The returned Value aliases internal state and must be cloned by the
// caller if it needs to outlive the following Next call.
func (it *GrowingTreeChunkIter) Next() (*streamjson.Value, bool) {
	for {
		segs := it.pointer.Segments()
		sourceVal := resolve(it.source, segs)
		currentVal := resolve(it.current, segs)

		switch sourceVal.Type() {
		case streamjson.Null, streamjson.Boolean, streamjson.Integer, streamjson.Number:
			// Not chunkable and already fully seeded by initCopy; just
			// ascend and let the loop re-evaluate the parent.
			if !it.ascend() {
				return nil, false
			}
			continue

		case streamjson.String:
			sourceStr, _ := sourceVal.AsString()
			currentStr, _ := currentVal.AsString()
			if len(currentStr) >= len(sourceStr) {
				if !it.ascend() {
					return nil, false
				}
				continue
			}
			remaining := sourceStr[len(currentStr):]
			grown, _ := graphemeBudget(remaining, it.bufSize)
			it.setString(segs, currentStr+grown)
			return it.current, true

		case streamjson.Array:
			sourceArr, _ := sourceVal.AsArray()
			if currentVal.Len() < len(sourceArr) {
				nextIdx := currentVal.Len()
				currentVal.Append(initCopy(sourceArr[nextIdx]))
				it.pointer.Down(strconv.Itoa(nextIdx))
				return it.current, true
			}
			if !it.ascend() {
				return nil, false
			}
			continue

		case streamjson.Object:
			sourceObj, _ := sourceVal.AsObject()
			currentObj, _ := currentVal.AsObject()
			found := false
			for pair := sourceObj.Oldest(); pair != nil; pair = pair.Next() {
				if _, ok := currentObj.Get(pair.Key); ok {
					continue
				}
				currentVal.Set(pair.Key, initCopy(pair.Value))
				it.pointer.Down(pair.Key)
				found = true
				break
			}
			if found {
				return it.current, true
			}
			if !it.ascend() {
				return nil, false
			}
			continue
		}
	}
}

// ascend moves the pointer to its parent and reports true, or reports
// false without moving if the pointer is already at the root.
func (it *GrowingTreeChunkIter) ascend() bool {
	if it.pointer.IsRoot() {
		return false
	}
	it.pointer.Up()
	return true
}

// setString overwrites the string value at segs with s. Resolving the
// parent separately from the leaf mirrors Value.setIndex's contract:
// a string value can't be mutated through its accessors alone, only
// replaced wholesale in its parent.
func (it *GrowingTreeChunkIter) setString(segs []string, s string) {
	if len(segs) == 0 {
		it.current = streamjson.NewString(s)
		return
	}
	parent := resolve(it.current, segs[:len(segs)-1])
	key := segs[len(segs)-1]
	switch parent.Type() {
	case streamjson.Array:
		idx, _ := strconv.Atoi(key)
		arr, _ := parent.AsArray()
		arr[idx] = streamjson.NewString(s)
	case streamjson.Object:
		parent.Set(key, streamjson.NewString(s))
	}
}
