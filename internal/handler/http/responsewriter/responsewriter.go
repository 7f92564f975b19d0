// Package responsewriter wraps http.ResponseWriter so middleware can see what a
// handler answered: the status code, the body size and whether anything was
// sent at all.
package responsewriter

import "net/http"

// Writer records the status and size of a response. A zero status means
// nothing has been sent yet.
type Writer struct {
	http.ResponseWriter
	status int
	size   int
}

// Wrap returns w itself when it is already wrapped, so stacked middleware share
// one recorder.
func Wrap(w http.ResponseWriter) *Writer {
	if rw, ok := w.(*Writer); ok {
		return rw
	}
	return &Writer{ResponseWriter: w}
}

func (w *Writer) WriteHeader(code int) {
	if w.status != 0 {
		return
	}
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *Writer) Write(b []byte) (int, error) {
	w.WriteHeader(http.StatusOK)
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Status is the code sent, or 200 when the handler wrote nothing, which is
// what net/http answers in that case.
func (w *Writer) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Size is the number of body bytes sent.
func (w *Writer) Size() int { return w.size }

// Committed reports whether the status line has been sent. After that a
// handler can no longer switch to an error page.
func (w *Writer) Committed() bool { return w.status != 0 }

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *Writer) Unwrap() http.ResponseWriter { return w.ResponseWriter }
