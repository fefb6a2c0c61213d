// Package chunk implements streamjson's two value chunkers: the
// growing-tree chunker (growingtree.go) and the protocol chunker
// (protocolchunker.go), plus a periodic-sleep streamer (stream.go)
// over the latter.
package chunk

import "github.com/clipperhouse/uax29/v2/graphemes"

// graphemeBudget returns the longest prefix of s whose byte length is
// at most budget, rounded up to the next whole grapheme cluster so a
// combining sequence is never split across chunks — at least one
// grapheme is always included, even if it alone exceeds budget.
// Grounded on json_growing_tree_chunker.rs / json_protocol_chunker.rs,
// which both segment with unicode_segmentation::graphemes(true) for
// the same reason.
func graphemeBudget(s string, budget int) (prefix string, consumed int) {
	if len(s) <= budget {
		return s, len(s)
	}
	seg := graphemes.FromString(s)
	total := 0
	for seg.Next() {
		total += len(seg.Value())
		if total >= budget {
			break
		}
	}
	if total == 0 {
		return s, len(s)
	}
	return s[:total], total
}
