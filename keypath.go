package streamjson

import "strings"

// KeyPath is a mutable, dotted-string representation of a path to a
// JSON value, used for event dispatch and whitelist filtering.
// Examples:
//
//	parent
//	parent.child.name
//	parent.children.1.name
//	1          # root is an array, access its second element
//	parent.*   # wildcard for any key of 'parent'
//	*          # wildcard for any key of root
//	*.*        # NOT supported: at most one wildcard per pattern
//
// The zero KeyPath is the root path (depth 0).
type KeyPath struct {
	current string
}

// Get returns the current dotted path. The root path is "".
func (p *KeyPath) Get() string {
	return p.current
}

// Descend moves down into an object key or array index segment.
// Returns false if key is empty (a no-op).
func (p *KeyPath) Descend(key string) bool {
	if len(key) == 0 {
		return false
	}
	if len(p.current) > 0 {
		p.current += "."
	}
	p.current += key
	return true
}

// Ascend moves up one level. Returns false if already at root (a
// no-op); ascending from root never panics.
func (p *KeyPath) Ascend() bool {
	if len(p.current) == 0 {
		return false
	}
	lastDot := strings.LastIndexByte(p.current, '.')
	if lastDot < 0 {
		p.current = ""
	} else {
		p.current = p.current[:lastDot]
	}
	return true
}

// Match reports whether expr matches the current path. expr may
// contain at most one '*', which matches exactly one whole segment
// (everything up to the next '.' or the end of the path).
func (p *KeyPath) Match(expr string) bool {
	exprBytes := []byte(expr)
	curBytes := []byte(p.current)
	exprIdx, curIdx := 0, 0
	wildcardUsed := false

	for {
		if exprIdx == len(exprBytes) || curIdx == len(curBytes) {
			return exprIdx == len(exprBytes) && curIdx == len(curBytes)
		}
		if exprBytes[exprIdx] == '*' {
			if wildcardUsed {
				// More than one wildcard is rejected: never matches.
				return false
			}
			wildcardUsed = true
			for {
				curIdx++
				if curIdx == len(curBytes) || curBytes[curIdx] == '.' {
					exprIdx++
					break
				}
			}
		} else {
			if exprBytes[exprIdx] != curBytes[curIdx] {
				return false
			}
			exprIdx++
			curIdx++
		}
	}
}

// MatchAny reports whether the current path matches any pattern in
// patterns. If patterns is nil, allowEmptyMatch selects the semantics
// for "no whitelist given": true means "match everything" (absent
// whitelist), false means "match nothing" (explicitly empty
// whitelist). A non-nil, non-empty patterns list is matched
// independently of allowEmptyMatch.
func (p *KeyPath) MatchAny(patterns []string, allowEmptyMatch bool) bool {
	if patterns == nil {
		return allowEmptyMatch
	}
	if len(patterns) == 0 {
		return false
	}
	for _, pattern := range patterns {
		if p.Match(pattern) {
			return true
		}
	}
	return false
}
