package courier

import "context"

// Controller is a per-call cancellation handle. A Controller passed in
// through RequestOptions is shared with the client: a timeout aborts it, but
// the client never aborts it when the call completes normally.
type Controller struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func NewController(parent context.Context) *Controller {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Controller{ctx: ctx, cancel: cancel}
}

func (c *Controller) Context() context.Context {
	return c.ctx
}

// Abort cancels every request bound to the controller. Safe to call more than once.
func (c *Controller) Abort() {
	c.cancel()
}

func (c *Controller) Aborted() bool {
	return c.ctx.Err() != nil
}
