package chunk

import (
	"fmt"
	"strconv"

	"github.com/mcvoid/streamjson"
)

// ProtocolChunker replays a complete Value directly as KE protocol
// lines, without ever materializing a growing copy: each step emits one
// row. Its rows differ from a live Parser's in two ways: every array
// element and object value gets a slot of its own, scalars included
// (a "$ke$N" row in the parent, then "N=<value>"), and a string's first
// row assigns its first piece instead of an empty string. Grounded on
// json_protocol_chunker.rs.
type ProtocolChunker struct {
	source       *streamjson.Value
	idxGen       streamjson.RefIndexGenerator
	rootRefIndex uint64
}

// NewProtocolChunker returns a chunker over source. idxGen is shared
// with any other component assigning ref indices (e.g. a live
// Parser), so rows it emits never collide with rows already sent.
// rootRefIndex is the slot the root value was already assigned.
func NewProtocolChunker(source *streamjson.Value, idxGen streamjson.RefIndexGenerator, rootRefIndex uint64) *ProtocolChunker {
	return &ProtocolChunker{source: source, idxGen: idxGen, rootRefIndex: rootRefIndex}
}

// Chunks returns an iterator yielding one protocol line per call to
// Next, budgeting about bufSize bytes of string content per line,
// rounded up to a whole grapheme cluster.
func (c *ProtocolChunker) Chunks(bufSize int) *ProtocolChunkIter {
	return &ProtocolChunkIter{
		source:          c.source,
		idxGen:          c.idxGen,
		rootRefIndex:    c.rootRefIndex,
		nextAccessedIdx: make(map[string]int),
		pointerIndexMap: make(map[string]uint64),
		bufSize:         bufSize,
	}
}

// ProtocolChunkIter is the stateful cursor driving one protocol-chunk
// traversal. It is not safe for concurrent use.
type ProtocolChunkIter struct {
	source          *streamjson.Value
	idxGen          streamjson.RefIndexGenerator
	rootRefIndex    uint64
	currentRefIndex *uint64

	// nextAccessedIdx tracks, per pointer expression, how far that
	// node's content has already been emitted: a byte offset for
	// strings, an element/field count for arrays/objects, and an
	// arbitrary sentinel (0) for scalars (presence alone marks them
	// done).
	nextAccessedIdx map[string]int
	pointerIndexMap map[string]uint64

	pointer streamjson.ValuePointer
	bufSize int
}

func pointerKey(p *streamjson.ValuePointer) string {
	if p.IsRoot() {
		return "/"
	}
	return p.Expr()
}

// Next returns the next protocol line and true, or ("", false) once
// every node in the document has been fully emitted.
func (it *ProtocolChunkIter) Next() (string, bool) {
	for {
		sourceVal := resolve(it.source, it.pointer.Segments())
		pe := pointerKey(&it.pointer)

		if it.currentRefIndex == nil {
			v := it.idxGen.Generate()
			it.currentRefIndex = &v
		}
		currentIdx, ok := it.pointerIndexMap[pe]
		if !ok {
			if pe == "/" {
				currentIdx = it.rootRefIndex
			} else {
				currentIdx = *it.currentRefIndex
			}
			it.pointerIndexMap[pe] = currentIdx
		}

		switch sourceVal.Type() {
		case streamjson.Null, streamjson.Boolean, streamjson.Integer, streamjson.Number:
			if _, seen := it.nextAccessedIdx[pe]; seen {
				delete(it.nextAccessedIdx, pe)
				if pe == "/" {
					return "", false
				}
				it.pointer.Up()
				continue
			}
			it.nextAccessedIdx[pe] = 0
			return fmt.Sprintf("%d=%s\n", currentIdx, sourceVal.String()), true

		case streamjson.String:
			return it.nextString(sourceVal, pe, currentIdx)

		case streamjson.Array:
			return it.nextArray(sourceVal, pe, currentIdx)

		case streamjson.Object:
			return it.nextObject(sourceVal, pe, currentIdx)
		}
	}
}

func (it *ProtocolChunkIter) ascendOrStop(pe string) (string, bool) {
	delete(it.nextAccessedIdx, pe)
	if pe == "/" {
		return "", false
	}
	it.pointer.Up()
	return it.Next()
}

func (it *ProtocolChunkIter) nextString(sourceVal *streamjson.Value, pe string, currentIdx uint64) (string, bool) {
	s, _ := sourceVal.AsString()
	if next, seen := it.nextAccessedIdx[pe]; seen {
		if next >= len(s) {
			return it.ascendOrStop(pe)
		}
		rest := s[next:]
		chunk, consumed := graphemeBudget(rest, it.bufSize)
		it.nextAccessedIdx[pe] = next + consumed
		return fmt.Sprintf("%d+=%s\n", currentIdx, streamjson.NewString(chunk).String()), true
	}
	chunk, consumed := graphemeBudget(s, it.bufSize)
	if consumed >= len(s) {
		it.nextAccessedIdx[pe] = len(s)
		it.pointer.Up()
	} else {
		it.nextAccessedIdx[pe] = consumed
	}
	return fmt.Sprintf("%d=%s\n", currentIdx, streamjson.NewString(chunk).String()), true
}

func (it *ProtocolChunkIter) nextArray(sourceVal *streamjson.Value, pe string, currentIdx uint64) (string, bool) {
	arr, _ := sourceVal.AsArray()
	if next, seen := it.nextAccessedIdx[pe]; seen {
		if next >= len(arr) {
			return it.ascendOrStop(pe)
		}
		it.nextAccessedIdx[pe] = next + 1
		it.pointer.Down(strconv.Itoa(next))
		v := it.idxGen.Generate()
		it.currentRefIndex = &v
		return fmt.Sprintf("%d+=%s\n", currentIdx, streamjson.NewString(streamjson.RefToken(v)).String()), true
	}
	it.nextAccessedIdx[pe] = 0
	if len(arr) == 0 {
		it.pointer.Up()
	}
	return fmt.Sprintf("%d=[]\n", currentIdx), true
}

func (it *ProtocolChunkIter) nextObject(sourceVal *streamjson.Value, pe string, currentIdx uint64) (string, bool) {
	obj, _ := sourceVal.AsObject()
	if next, seen := it.nextAccessedIdx[pe]; seen {
		if next >= obj.Len() {
			return it.ascendOrStop(pe)
		}
		it.nextAccessedIdx[pe] = next + 1
		key := ""
		i := 0
		for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
			if i == next {
				key = pair.Key
				break
			}
			i++
		}
		it.pointer.Down(key)
		v := it.idxGen.Generate()
		it.currentRefIndex = &v
		return fmt.Sprintf("%d+={%s:%s}\n", currentIdx, streamjson.NewString(key).String(), streamjson.NewString(streamjson.RefToken(v)).String()), true
	}
	it.nextAccessedIdx[pe] = 0
	if obj.Len() == 0 {
		it.pointer.Up()
	}
	return fmt.Sprintf("%d={}\n", currentIdx), true
}
