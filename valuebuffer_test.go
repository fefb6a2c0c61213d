package streamjson

import "testing"

func TestValueBufferRootInsert(t *testing.T) {
	b := NewValueBuffer()
	if b.Root().Type() != Null {
		t.Errorf("expected fresh buffer to hold null, got %v", b.Root().Type())
	}
	b.Insert(NewInteger(5))
	v, err := b.Root().AsInteger()
	if err != nil || v != 5 {
		t.Errorf("expected 5 nil got %v %v", v, err)
	}
}

func TestValueBufferObjectNesting(t *testing.T) {
	b := NewValueBuffer()
	b.Insert(NewObject())

	b.Descend("name", String)
	b.Insert(NewString("alice"))
	b.Up()

	b.Descend("age", Null)
	b.Insert(NewInteger(30))
	b.Up()

	root := b.Root()
	name, err := root.Key("name").AsString()
	if err != nil || name != "alice" {
		t.Errorf("expected alice nil got %v %v", name, err)
	}
	age, err := root.Key("age").AsInteger()
	if err != nil || age != 30 {
		t.Errorf("expected 30 nil got %v %v", age, err)
	}
}

func TestValueBufferArrayNesting(t *testing.T) {
	b := NewValueBuffer()
	b.Insert(NewArray())

	b.Descend("0", Null)
	b.Insert(NewInteger(1))
	b.Up()

	b.Descend("1", Null)
	b.Insert(NewInteger(2))
	b.Up()

	root := b.Root()
	if root.Len() != 2 {
		t.Fatalf("expected len 2 got %v", root.Len())
	}
	first, _ := root.Index(0).AsInteger()
	second, _ := root.Index(1).AsInteger()
	if first != 1 || second != 2 {
		t.Errorf("expected 1 2 got %v %v", first, second)
	}
}

func TestValueBufferDescendIntoContainerLeavesRealContainer(t *testing.T) {
	b := NewValueBuffer()
	b.Insert(NewObject())
	b.Descend("items", Array)

	current := b.Current()
	if current.Type() != Array {
		t.Errorf("expected array placeholder, got %v", current.Type())
	}
	current.Append(NewInteger(1))
	b.Up()

	items := b.Root().Key("items")
	if items.Len() != 1 {
		t.Errorf("expected the array appended into Current() to be visible through root, got len %v", items.Len())
	}
}

func TestValueBufferCurrent(t *testing.T) {
	b := NewValueBuffer()
	b.Insert(NewObject())
	b.Descend("a", Null)
	b.Insert(NewInteger(9))

	v, err := b.Current().AsInteger()
	if err != nil || v != 9 {
		t.Errorf("expected 9 nil got %v %v", v, err)
	}
}
