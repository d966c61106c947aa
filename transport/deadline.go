package transport

import (
	"context"
	"time"
)

type deadliner interface {
	SetDeadline(t time.Time) error
}

// bindContext applies the deadline of ctx, or timeout when ctx has none, to
// conn and interrupts blocked I/O when ctx is cancelled. The returned
// function must be called once the exchange is over.
func bindContext(ctx context.Context, conn deadliner, timeout time.Duration) func() {
	deadline, ok := ctx.Deadline()
	if !ok && timeout > 0 {
		deadline, ok = time.Now().Add(timeout), true
	}
	if ok {
		_ = conn.SetDeadline(deadline)
	}

	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Unix(1, 0))
	})

	return func() {
		stop()
		_ = conn.SetDeadline(time.Time{})
	}
}

// ctxErr prefers the context error over the I/O error it caused. A passed
// deadline counts even if the context timer has not fired yet.
func ctxErr(ctx context.Context, err error) error {
	if cerr := ctx.Err(); cerr != nil {
		return cerr
	}
	if d, ok := ctx.Deadline(); ok && !time.Now().Before(d) {
		return context.DeadlineExceeded
	}

	return err
}
