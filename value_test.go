package streamjson

import (
	"fmt"
	"testing"
)

func TestTypeString(t *testing.T) {
	for _, test := range []struct {
		input    Type
		expected string
	}{
		{Null, "<null>"},
		{Number, "<number>"},
		{Integer, "<integer>"},
		{String, "<string>"},
		{Boolean, "<boolean>"},
		{Array, "<array>"},
		{Object, "<object>"},
		{numTypes, "<unknown>"},
		{typeUnknown, "<unknown>"},
		{1000, "<unknown>"},
	} {
		t.Run(fmt.Sprintf("%v", test.input), func(t *testing.T) {
			if actual := test.input.String(); actual != test.expected {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestValueConstructorsAndType(t *testing.T) {
	for _, test := range []struct {
		name     string
		value    *Value
		expected Type
	}{
		{"null", NewNull(), Null},
		{"bool", NewBool(true), Boolean},
		{"integer", NewInteger(5), Integer},
		{"number", NewNumber(5.5), Number},
		{"string", NewString("hi"), String},
		{"array", NewArray(), Array},
		{"object", NewObject(), Object},
		{"nil value", nil, Null},
	} {
		t.Run(test.name, func(t *testing.T) {
			if actual := test.value.Type(); actual != test.expected {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestAsAccessors(t *testing.T) {
	if _, err := NewNull().AsNull(); err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if _, err := NewBool(true).AsNull(); err == nil {
		t.Errorf("expected error got none")
	}

	n, err := NewInteger(5).AsNumber()
	if err != nil || n != 5 {
		t.Errorf("expected 5 nil got %v %v", n, err)
	}
	n, err = NewNumber(5.5).AsNumber()
	if err != nil || n != 5.5 {
		t.Errorf("expected 5.5 nil got %v %v", n, err)
	}
	if _, err := NewBool(true).AsNumber(); err == nil {
		t.Errorf("expected error got none")
	}

	i, err := NewInteger(7).AsInteger()
	if err != nil || i != 7 {
		t.Errorf("expected 7 nil got %v %v", i, err)
	}
	if _, err := NewNumber(7.5).AsInteger(); err == nil {
		t.Errorf("expected error got none")
	}

	s, err := NewString("hello").AsString()
	if err != nil || s != "hello" {
		t.Errorf("expected hello nil got %v %v", s, err)
	}

	b, err := NewBool(true).AsBoolean()
	if err != nil || !b {
		t.Errorf("expected true nil got %v %v", b, err)
	}
}

func TestArrayAppendIndexLen(t *testing.T) {
	arr := NewArray()
	arr.Append(NewInteger(1))
	arr.Append(NewInteger(2))

	if arr.Len() != 2 {
		t.Errorf("expected len 2 got %v", arr.Len())
	}
	v, err := arr.Index(0).AsInteger()
	if err != nil || v != 1 {
		t.Errorf("expected 1 nil got %v %v", v, err)
	}
	// Out-of-range access is a null Value, not an error.
	if arr.Index(99).Type() != Null {
		t.Errorf("expected null for out-of-range index")
	}
	if NewNull().Index(0).Type() != Null {
		t.Errorf("expected null for index into non-array")
	}
}

func TestObjectSetKeyLen(t *testing.T) {
	obj := NewObject()
	obj.Set("a", NewInteger(1))
	obj.Set("b", NewInteger(2))

	if obj.Len() != 2 {
		t.Errorf("expected len 2 got %v", obj.Len())
	}
	v, err := obj.Key("a").AsInteger()
	if err != nil || v != 1 {
		t.Errorf("expected 1 nil got %v %v", v, err)
	}
	if obj.Key("missing").Type() != Null {
		t.Errorf("expected null for missing key")
	}
	if NewNull().Key("a").Type() != Null {
		t.Errorf("expected null for key into non-object")
	}
}

func TestAppendPanicsOnNonArray(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	NewNull().Append(NewInteger(1))
}

func TestSetPanicsOnNonObject(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	NewNull().Set("a", NewInteger(1))
}

func TestClone(t *testing.T) {
	src := NewObject()
	src.Set("items", NewArray())
	src.Key("items").Append(NewInteger(1))

	clone := src.Clone()
	src.Key("items").Append(NewInteger(2))

	if clone.Key("items").Len() != 1 {
		t.Errorf("clone should not observe mutations made after cloning, got len %v", clone.Key("items").Len())
	}
	if src.Key("items").Len() != 2 {
		t.Errorf("expected original to have 2 items, got %v", src.Key("items").Len())
	}
}

func TestStringRendering(t *testing.T) {
	for _, test := range []struct {
		name     string
		value    *Value
		expected string
	}{
		{"null", NewNull(), "null"},
		{"true", NewBool(true), "true"},
		{"false", NewBool(false), "false"},
		{"integer", NewInteger(42), "42"},
		{"number", NewNumber(1.5), "1.5"},
		{"string", NewString(`a"b`), `"a\"b"`},
		{"empty array", NewArray(), "[]"},
		{"empty object", NewObject(), "{}"},
	} {
		t.Run(test.name, func(t *testing.T) {
			if actual := test.value.String(); actual != test.expected {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestStringRenderingNestedPreservesKeyOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("z", NewInteger(1))
	obj.Set("a", NewInteger(2))
	arr := NewArray()
	arr.Append(NewBool(true))
	arr.Append(NewNull())
	obj.Set("arr", arr)

	expected := `{"z":1,"a":2,"arr":[true,null]}`
	if actual := obj.String(); actual != expected {
		t.Errorf("expected %v got %v", expected, actual)
	}
}

func TestQuoteJSONStringEscapesControlChars(t *testing.T) {
	v := NewString("line\ntab\ttab\x01end")
	expected := `"line\ntab\ttab\u0001end"`
	if actual := v.String(); actual != expected {
		t.Errorf("expected %v got %v", expected, actual)
	}
}

func TestMarshalJSON(t *testing.T) {
	v := NewInteger(7)
	b, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	if string(b) != "7" {
		t.Errorf("expected 7 got %v", string(b))
	}
}
