package advisor

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"
)

const adviseKey = "advise"

// Advisor runs provider calls in the background and hands results back to
// the frame loop through Poll. At most one call is in flight at a time.
// Request and Poll are meant to be called from the frame loop goroutine.
type Advisor struct {
	provider Provider
	timeout  time.Duration
	logger   *log.Logger
	base     context.Context
	cancel   context.CancelFunc

	group    singleflight.Group
	inflight <-chan singleflight.Result
}

// New creates an advisor. A nil provider always answers with Fallback.
// A nil logger uses the default charmbracelet logger.
func New(provider Provider, timeout time.Duration, logger *log.Logger) *Advisor {
	if logger == nil {
		logger = log.Default()
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	base, cancel := context.WithCancel(context.Background())
	return &Advisor{
		provider: provider,
		timeout:  timeout,
		logger:   logger,
		base:     base,
		cancel:   cancel,
	}
}

// Request starts a provider call unless one is already running.
// It never blocks and reports whether a new call was started.
func (a *Advisor) Request(req Request) bool {
	if a.inflight != nil {
		return false
	}
	a.inflight = a.group.DoChan(adviseKey, func() (any, error) {
		return a.consult(req), nil
	})
	return true
}

// Pending reports whether a call is in flight.
func (a *Advisor) Pending() bool {
	return a.inflight != nil
}

// Poll returns the finished directive, if any. It never blocks.
func (a *Advisor) Poll() (Directive, bool) {
	if a.inflight == nil {
		return Directive{}, false
	}
	select {
	case res := <-a.inflight:
		a.inflight = nil
		d, ok := res.Val.(Directive)
		if !ok || res.Err != nil {
			return Fallback(), true
		}
		return d, true
	default:
		return Directive{}, false
	}
}

// Close cancels any running call.
func (a *Advisor) Close() {
	a.cancel()
}

func (a *Advisor) consult(req Request) Directive {
	if a.provider == nil {
		return Fallback()
	}

	ctx, cancel := context.WithTimeout(a.base, a.timeout)
	defer cancel()

	d, err := a.provider.Advise(ctx, req)
	if err != nil {
		a.logger.Warn("advisory request failed, using fallback", "error", err)
		return Fallback()
	}
	if err := d.Validate(); err != nil {
		a.logger.Warn("advisory response rejected, using fallback", "error", err)
		return Fallback()
	}
	return d
}
