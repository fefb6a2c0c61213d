package streamjson

import (
	"io"

	"github.com/rs/zerolog/log"
)

// Writer adapts a Parser to the io.Writer interface: every byte
// written is fed through the mapper and any wire protocol text it
// produces is written straight through to the wrapped writer. Parse
// errors are not returned from Write (io.Writer gives no room to
// recover mid-stream); they are logged and latch the Writer so
// further bytes are silently dropped. Grounded on
// json_stream_parser.rs::JsonStreamParser, the original's thin
// io::Write wrapper around the same mapper.
type Writer struct {
	w      io.Writer
	parser *Parser
	err    error
}

// NewWriter returns a Writer that feeds bytes to parser and writes its
// emitted protocol text to w.
func NewWriter(w io.Writer, parser *Parser) *Writer {
	return &Writer{w: w, parser: parser}
}

// Write implements io.Writer. It always reports consuming all of p,
// even on an internal parse error, so callers that ignore the n
// return value don't retry the same bytes.
func (jw *Writer) Write(p []byte) (n int, err error) {
	if jw.err != nil {
		return len(p), nil
	}
	for _, b := range p {
		text, err := jw.parser.AddChar(b)
		if err != nil {
			jw.err = err
			log.Error().Err(err).Msg("streamjson: write aborted on parse error")
			return len(p), nil
		}
		if text == "" {
			continue
		}
		if _, werr := io.WriteString(jw.w, text); werr != nil {
			return len(p), werr
		}
	}
	return len(p), nil
}

// Flush requests best-effort emission of the in-progress string and
// writes it through to the wrapped writer.
func (jw *Writer) Flush() error {
	if jw.err != nil {
		return nil
	}
	text := jw.parser.Flush()
	if text == "" {
		return nil
	}
	_, err := io.WriteString(jw.w, text)
	return err
}

// Close declares no more input is coming and finalizes any lingering
// parser state. Finalization failures are logged by the parser itself,
// not returned; the only error Close returns is one from writing the
// final rows to the wrapped writer.
func (jw *Writer) Close() error {
	jw.parser.Finish()
	_, err := io.WriteString(jw.w, jw.parser.sink.drain())
	return err
}
