package streamjson

import "strings"

// ValuePointer is a JSON-Pointer-style navigator: a string of
// '/'-separated segments, never ending in '/'. The root position is
// represented by a nil expression, not an empty string. Both chunkers
// in the chunk package use it to track their position in the source
// and growing-current value trees.
type ValuePointer struct {
	expr *string
}

// Segments returns the pointer's path as a slice of keys/indices, nil
// at root.
func (p *ValuePointer) Segments() []string {
	if p.expr == nil {
		return nil
	}
	return strings.Split((*p.expr)[1:], "/")
}

// Expr returns the current pointer expression, or "" at root.
func (p *ValuePointer) Expr() string {
	if p.expr == nil {
		return ""
	}
	return *p.expr
}

// IsRoot reports whether the pointer is currently at the root.
func (p *ValuePointer) IsRoot() bool {
	return p.expr == nil
}

// Down appends a new segment.
func (p *ValuePointer) Down(key string) {
	if p.expr == nil {
		s := "/" + key
		p.expr = &s
	} else {
		s := *p.expr + "/" + key
		p.expr = &s
	}
}

// Up moves up one level. Returns true if it moved into a non-root
// parent, false if it moved to (or was already at) the root.
func (p *ValuePointer) Up() bool {
	parent := p.parentExpr()
	if parent != nil {
		p.expr = parent
		return true
	}
	p.expr = nil
	return false
}

// parentExpr returns the pointer expression with its final segment
// removed, or nil if that would be the root.
func (p *ValuePointer) parentExpr() *string {
	if p.expr == nil {
		return nil
	}
	parts := strings.Split(*p.expr, "/")
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts[:len(parts)-1], "/")
	if joined == "" {
		return nil
	}
	return &joined
}
