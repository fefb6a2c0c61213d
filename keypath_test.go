package streamjson

import "testing"

func TestKeyPathDescendAscend(t *testing.T) {
	var p KeyPath
	if p.Get() != "" {
		t.Errorf("expected empty root got %v", p.Get())
	}
	p.Descend("a")
	p.Descend("b")
	p.Descend("1")
	if p.Get() != "a.b.1" {
		t.Errorf("expected a.b.1 got %v", p.Get())
	}
	p.Ascend()
	if p.Get() != "a.b" {
		t.Errorf("expected a.b got %v", p.Get())
	}
	p.Ascend()
	p.Ascend()
	if p.Get() != "" {
		t.Errorf("expected empty got %v", p.Get())
	}
	if p.Ascend() {
		t.Errorf("expected ascend from root to be a no-op")
	}
}

func TestKeyPathDescendEmptyKeyIsNoop(t *testing.T) {
	var p KeyPath
	if p.Descend("") {
		t.Errorf("expected Descend(\"\") to report false")
	}
	if p.Get() != "" {
		t.Errorf("expected path unchanged got %v", p.Get())
	}
}

func TestKeyPathMatch(t *testing.T) {
	for _, test := range []struct {
		name     string
		path     string
		pattern  string
		expected bool
	}{
		{"exact match", "a.b.c", "a.b.c", true},
		{"exact mismatch", "a.b.c", "a.b.d", false},
		{"root wildcard", "anything", "*", true},
		{"mid wildcard", "parent.child.name", "parent.*.name", true},
		{"mid wildcard mismatch depth", "parent.child.grand.name", "parent.*.name", false},
		{"trailing wildcard", "parent.child", "parent.*", true},
		{"double wildcard rejected", "a.b", "*.*", false},
		{"pattern longer than path", "a", "a.b", false},
		{"path longer than pattern", "a.b", "a", false},
	} {
		t.Run(test.name, func(t *testing.T) {
			p := KeyPath{current: test.path}
			if actual := p.Match(test.pattern); actual != test.expected {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestKeyPathMatchAny(t *testing.T) {
	p := KeyPath{current: "a.b"}

	if !p.MatchAny(nil, true) {
		t.Errorf("expected nil patterns with allowEmptyMatch=true to match")
	}
	if p.MatchAny(nil, false) {
		t.Errorf("expected nil patterns with allowEmptyMatch=false not to match")
	}
	if p.MatchAny([]string{}, true) {
		t.Errorf("expected empty (non-nil) patterns never to match")
	}
	if !p.MatchAny([]string{"x.y", "a.*"}, false) {
		t.Errorf("expected one matching pattern to match")
	}
	if p.MatchAny([]string{"x.y", "z.*"}, false) {
		t.Errorf("expected no matching pattern not to match")
	}
}
