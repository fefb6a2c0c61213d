package chunk

import (
	"testing"
	"time"

	"github.com/mcvoid/streamjson"
)

func TestStreamClampsIntervalToMax(t *testing.T) {
	idxGen := streamjson.NewRefIndexGenerator()
	iter := NewProtocolChunker(streamjson.NewInteger(1), idxGen, idxGen.Generate()).Chunks(64)

	s := NewStream(iter, MaxStreamInterval*10)
	if s.interval != MaxStreamInterval {
		t.Errorf("expected interval clamped to %v, got %v", MaxStreamInterval, s.interval)
	}
}

func TestStreamRunDeliversRowsThenCloses(t *testing.T) {
	idxGen := streamjson.NewRefIndexGenerator()
	rootIdx := idxGen.Generate()
	iter := NewProtocolChunker(streamjson.NewInteger(7), idxGen, rootIdx).Chunks(64)

	s := NewStream(iter, time.Millisecond)
	out := s.Run()

	select {
	case line, ok := <-out:
		if !ok {
			t.Fatalf("expected a row before the channel closes")
		}
		if line != "1=7\n" {
			t.Errorf("expected \"1=7\\n\", got %q", line)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for the first row")
	}

	select {
	case _, ok := <-out:
		if ok {
			t.Fatalf("expected the channel to close once the chunker is exhausted")
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for the channel to close")
	}
}
