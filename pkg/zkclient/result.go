package zkclient

import (
	"time"
)

// Result is the canonical outcome of an asynchronous operation. Every native
// completion shape the wire client reports is normalized into one of these.
// Err carries the service's status for the call; the payload fields are
// populated according to which operation produced the result.
type Result struct {
	Err  error
	Path string
	// Ctx is the caller-supplied correlation value, defaulting to the
	// operation's path.
	Ctx any

	// Name is the created node's actual name (create only).
	Name string
	Stat *Stat
	Data []byte
	// Children holds the child names in sorted order (children only).
	Children []string
	ACL      []ACL
}

// Callback observes the Result of an asynchronous operation. Callbacks run on
// the operation's delivery goroutine after the Pending handle has resolved,
// so they must not block; hand long work off to another goroutine.
type Callback func(Result)

// Pending is the handle for an in-flight asynchronous operation. It resolves
// exactly once; any number of goroutines may wait on it.
type Pending struct {
	done chan struct{}
	res  Result
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// resolve stores the result and releases all waiters. It must be called
// exactly once; each operation registers exactly one bridge.
func (p *Pending) resolve(r Result) {
	p.res = r
	close(p.done)
}

// Done returns a channel that is closed once the operation has resolved.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the operation resolves and returns its result.
func (p *Pending) Wait() Result {
	<-p.done
	return p.res
}

// WaitTimeout waits up to d for resolution. The second return is false if the
// operation is still in flight when the timeout fires.
func (p *Pending) WaitTimeout(d time.Duration) (Result, bool) {
	select {
	case <-p.done:
		return p.res, true
	case <-time.After(d):
		return Result{}, false
	}
}

// bridge binds a pending cell to an optional user callback. The returned
// delivery func resolves the cell before invoking the callback, so code
// waiting on the handle observes completion no later than the callback does.
// A panicking callback cannot unresolve the cell.
func bridge(p *Pending, cb Callback) func(Result) {
	return func(r Result) {
		p.resolve(r)
		if cb != nil {
			cb(r)
		}
	}
}
