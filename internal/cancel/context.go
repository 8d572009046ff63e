package cancel

import (
	"context"
	"os"
	"os/signal"
)

// ContextCanceler adapts a context.Context to the Canceler interface.
//
// Each call to Done() performs a non-blocking select on ctx.Done(),
// which costs a channel operation per poll.
type ContextCanceler struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
	stop   context.CancelFunc // Releases signal delivery for NewSignal
}

// NewContext creates a ContextCanceler from a parent context.
func NewContext(parent context.Context) *ContextCanceler {
	ctx, cancel := context.WithCancelCause(parent)
	return &ContextCanceler{
		ctx:    ctx,
		cancel: cancel,
		stop:   func() {},
	}
}

// NewSignal creates a ContextCanceler that is also cancelled when one of
// the given signals arrives.
func NewSignal(parent context.Context, signals ...os.Signal) *ContextCanceler {
	sctx, stop := signal.NotifyContext(parent, signals...)
	ctx, cancel := context.WithCancelCause(sctx)
	return &ContextCanceler{
		ctx:    ctx,
		cancel: cancel,
		stop:   stop,
	}
}

// Done returns true if the context has been cancelled.
func (c *ContextCanceler) Done() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// Cancel cancels the context and, for NewSignal, stops signal delivery.
func (c *ContextCanceler) Cancel() {
	c.CancelCause(nil)
}

// CancelCause cancels the context with err as its cause.
func (c *ContextCanceler) CancelCause(err error) {
	c.cancel(err)
	c.stop()
}

// Err returns context.Cause of the underlying context: nil while it is
// live, otherwise the first cause given to it or to a parent.
func (c *ContextCanceler) Err() error {
	return context.Cause(c.ctx)
}

// Context returns the underlying context.Context.
func (c *ContextCanceler) Context() context.Context {
	return c.ctx
}
