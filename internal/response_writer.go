package internal

import "net/http"

// ResponseWriter records the status and body size of a response so access
// logs and metrics can read them after the handler returns. Only the first
// WriteHeader call reaches the client.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	size    int64
	written bool
}

// NewResponseWriter wraps w. Status reports 200 until something is written.
func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *ResponseWriter) WriteHeader(code int) {
	if w.written {
		return
	}
	w.written = true
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(w.status)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += int64(n)
	return n, err
}

// Status returns the status sent, or 200 if nothing was sent yet.
func (w *ResponseWriter) Status() int { return w.status }

// Size returns the number of body bytes written.
func (w *ResponseWriter) Size() int64 { return w.size }

// Written reports whether the status line has been sent.
func (w *ResponseWriter) Written() bool { return w.written }

// Unwrap lets http.ResponseController reach the underlying writer for
// Flush, Hijack and deadlines.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
