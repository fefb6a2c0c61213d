package chunk

import "time"

// MaxStreamInterval is the longest interval Stream will honor between
// chunks; larger requests are silently clamped. Grounded on
// json_protocol_chunker.rs::MAX_CHUNK_SETTINGS_INTERVAL.
const MaxStreamInterval = 10 * time.Second

// Stream periodically pulls from a ProtocolChunkIter on its own
// goroutine and delivers each line over a channel, sleeping interval
// between pulls. It is the sole concurrency-adjacent helper in this
// module; the hard core stays single-threaded and synchronous.
// Grounded on json_protocol_chunker.rs::JsonProtocolChunkStream, whose
// Stream::poll_next sleeps once per item for the same reason: there is
// no other way to pace delivery on a single-threaded iterator.
type Stream struct {
	iter     *ProtocolChunkIter
	interval time.Duration
}

// NewStream wraps iter, clamping interval to MaxStreamInterval.
func NewStream(iter *ProtocolChunkIter, interval time.Duration) *Stream {
	if interval > MaxStreamInterval {
		interval = MaxStreamInterval
	}
	return &Stream{iter: iter, interval: interval}
}

// Run starts the streamer's goroutine and returns a channel of
// protocol lines, closed once the underlying iterator is exhausted.
func (s *Stream) Run() <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		for {
			time.Sleep(s.interval)
			line, ok := s.iter.Next()
			if !ok {
				return
			}
			out <- line
		}
	}()
	return out
}
