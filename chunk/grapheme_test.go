package chunk

import "testing"

func TestGraphemeBudgetShortStringReturnsWhole(t *testing.T) {
	prefix, consumed := graphemeBudget("hi", 10)
	if prefix != "hi" || consumed != 2 {
		t.Errorf("expected (hi, 2), got (%q, %v)", prefix, consumed)
	}
}

func TestGraphemeBudgetSplitsOnClusterBoundary(t *testing.T) {
	prefix, consumed := graphemeBudget("hello", 2)
	if prefix != "he" || consumed != 2 {
		t.Errorf("expected (he, 2), got (%q, %v)", prefix, consumed)
	}
}

func TestGraphemeBudgetNeverSplitsAMultibyteCluster(t *testing.T) {
	base := string([]rune{0x65, 0x301}) // "e" + combining acute accent
	s := base + "x"
	prefix, consumed := graphemeBudget(s, 1)
	if prefix != base {
		t.Errorf("expected the cluster kept whole, got %q", prefix)
	}
	if consumed != len(base) {
		t.Errorf("expected consumed to match the cluster's byte length, got %v", consumed)
	}
}
