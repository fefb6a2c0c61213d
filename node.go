package streamjson

import "github.com/mcvoid/streamjson/internal/status"

// nodeKind tags which of the three node shapes a node table entry is.
type nodeKind int

const (
	nodeBasic nodeKind = iota
	nodeArray
	nodeObject
)

// node is one entry in the mapper's node table: the bookkeeping the
// mapper keeps per nested array/object/scalar it is currently inside,
// grounded on partial_json_protocol_mapper's Node/NodeType pair. Unlike
// that source, ignoreOutput/ignoreBuffer live directly on the node:
// they are computed once on descent from the parent's flags and the
// whitelist filters, and only ever tighten going down the tree, never
// loosen.
//
// parentIdx of 0 marks the root node: ref indices from RefIndexGenerator
// start at 1, so 0 is never a real slot.
type node struct {
	parentIdx uint64
	kind      nodeKind

	// nextIndex is the count of elements already emitted for an array
	// node; it becomes that element's index and is then incremented.
	nextIndex int

	// pendingKey holds the most recently completed object key, set
	// once a key string finishes and cleared once its value completes.
	// Only meaningful for nodeObject.
	pendingKey string
	hasPending bool

	ignoreOutput bool
	ignoreBuffer bool

	// containerStatus holds the live *status.Object or *status.Array
	// this node owns while the mapper's cursor is down inside one of
	// its children; nil for nodeBasic. The mapper restores it as the
	// current status (after calling AfterKey/AfterValue/AfterElement)
	// once that child completes.
	containerStatus status.Status
}

func newRootNode(kind nodeKind) *node {
	return &node{parentIdx: 0, kind: kind}
}

// childFlags computes the inherited ignore flags for a new child of
// this node, given whether the child's own path passes the output and
// buffer whitelists.
func (n *node) childFlags(outputAllowed, bufferAllowed bool) (ignoreOutput, ignoreBuffer bool) {
	ignoreOutput = n.ignoreOutput || !outputAllowed
	ignoreBuffer = n.ignoreBuffer || !bufferAllowed
	return
}
