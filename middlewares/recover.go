package middlewares

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/dmitrymomot/contactform/internal"
)

// DefaultStackSize caps the stack captured for a recovered panic, in bytes.
const DefaultStackSize = 4 << 10

// PanicError is what Recover returns in place of a panic.
type PanicError struct {
	Value any
	Stack []byte // nil when stack capture is off
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// AsPanicError returns the PanicError in err's chain, or nil.
func AsPanicError(err error) *PanicError {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe
	}
	return nil
}

// IsPanicError reports whether err came from a recovered panic.
func IsPanicError(err error) bool {
	return AsPanicError(err) != nil
}

// RecoverOption configures Recover.
type RecoverOption func(*recoverer)

// WithStackSize sets how many bytes of stack are captured. Non-positive values are ignored.
func WithStackSize(size int) RecoverOption {
	return func(r *recoverer) {
		if size > 0 {
			r.stackSize = size
		}
	}
}

// WithoutStack turns stack capture off.
func WithoutStack() RecoverOption {
	return func(r *recoverer) {
		r.stackSize = 0
	}
}

type recoverer struct {
	stackSize int
}

func (r *recoverer) stack() []byte {
	if r.stackSize == 0 {
		return nil
	}
	buf := make([]byte, r.stackSize)
	return buf[:runtime.Stack(buf, false)]
}

// Recover converts a panic in the wrapped handler into a *PanicError,
// so the error handler answers with the usual 500 envelope. The panic is
// logged with the request path.
func Recover(opts ...RecoverOption) internal.Middleware {
	rc := &recoverer{stackSize: DefaultStackSize}
	for _, opt := range opts {
		opt(rc)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (err error) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}

				pe := &PanicError{Value: v, Stack: rc.stack()}
				attrs := []any{
					"panic", fmt.Sprint(v),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
				}
				if pe.Stack != nil {
					attrs = append(attrs, "stack", string(pe.Stack))
				}
				c.LogError("panic recovered", attrs...)

				err = pe
			}()

			return next(c)
		}
	}
}
