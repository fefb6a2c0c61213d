package streamjson

import "testing"

func TestRefIndexGeneratorStartsAtOne(t *testing.T) {
	g := NewRefIndexGenerator()
	if v := g.Generate(); v != 1 {
		t.Errorf("expected first generated index to be 1, got %v", v)
	}
	if v := g.Generate(); v != 2 {
		t.Errorf("expected second generated index to be 2, got %v", v)
	}
}

func TestRefIndexGeneratorCopiesShareCounter(t *testing.T) {
	g := NewRefIndexGenerator()
	h := g
	if v := g.Generate(); v != 1 {
		t.Errorf("expected 1, got %v", v)
	}
	if v := h.Generate(); v != 2 {
		t.Errorf("expected a copy to share the underlying counter, got %v", v)
	}
}
