package ipc

import (
	"bufio"
	"encoding/json"
	"io"
)

// responseWriter encodes one response per line and flushes after each one so
// the host sees it immediately even when w is a buffered pipe.
type responseWriter struct {
	buf *bufio.Writer
	enc *json.Encoder
}

func newResponseWriter(w io.Writer) *responseWriter {
	buf := bufio.NewWriter(w)
	return &responseWriter{
		buf: buf,
		enc: json.NewEncoder(buf),
	}
}

// Write encodes resp followed by a newline and flushes
func (rw *responseWriter) Write(resp Response) error {
	if err := rw.enc.Encode(resp); err != nil {
		return err
	}
	return rw.buf.Flush()
}
