package streamjson

import (
	"bytes"
	"testing"
)

func TestWriterStreamsProtocolRows(t *testing.T) {
	var buf bytes.Buffer
	refGen := NewRefIndexGenerator()
	parser := NewParser(refGen, refGen.Generate(), false, ParserOptions{})
	w := NewWriter(&buf, parser)

	n, err := w.Write([]byte(`[1,2]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("expected Write to report 5 consumed, got %v", n)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	// The scalar elements 1 and 2 never get their own forward-reference
	// row: only the array itself was a subnode worth pre-announcing.
	expected := "1=[]\n" + "1+=1\n" + "1+=2\n"
	if buf.String() != expected {
		t.Errorf("expected %q got %q", expected, buf.String())
	}
}

func TestWriterLatchesOnParseError(t *testing.T) {
	var buf bytes.Buffer
	refGen := NewRefIndexGenerator()
	parser := NewParser(refGen, refGen.Generate(), false, ParserOptions{})
	w := NewWriter(&buf, parser)

	n, err := w.Write([]byte("x"))
	if err != nil {
		t.Fatalf("expected Write to swallow the parse error, got %v", err)
	}
	if n != 1 {
		t.Errorf("expected n=1, got %v", n)
	}

	n, err = w.Write([]byte("more bytes"))
	if err != nil || n != len("more bytes") {
		t.Errorf("expected subsequent writes to be silently dropped, got n=%v err=%v", n, err)
	}
}

func TestWriterFlushEmitsPartialString(t *testing.T) {
	var buf bytes.Buffer
	refGen := NewRefIndexGenerator()
	parser := NewParser(refGen, refGen.Generate(), false, ParserOptions{})
	w := NewWriter(&buf, parser)

	if _, err := w.Write([]byte(`"hel`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("unexpected flush error: %v", err)
	}
	if expected := `1=""` + "\n" + `1+="hel"` + "\n"; buf.String() != expected {
		t.Errorf("expected %q got %q", expected, buf.String())
	}

	buf.Reset()
	if _, err := w.Write([]byte(`lo"`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	if expected := `1+="lo"` + "\n"; buf.String() != expected {
		t.Errorf("expected %q got %q", expected, buf.String())
	}
}
