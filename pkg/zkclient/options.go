package zkclient

import (
	"time"
)

// AnyVersion skips the service's version check on Delete and Set.
const AnyVersion int32 = -1

// DefaultSessionTimeout is used by Connect when no timeout is given.
const DefaultSessionTimeout = 5000 * time.Millisecond

// ConnectOptions configures session establishment.
type ConnectOptions struct {
	// SessionTimeout is the liveness timeout negotiated with the service.
	// Zero means DefaultSessionTimeout.
	SessionTimeout time.Duration
	// Watcher receives every session event, starting with the connected
	// notification that releases Connect itself. It also serves as the
	// session's default watcher for operations called with Watch: true.
	Watcher Watcher
}

// ExistsOptions configures Exists and ExistsAsync.
type ExistsOptions struct {
	// Watcher registers a one-shot watch on the path, whether or not the
	// node exists yet. Takes precedence over Watch.
	Watcher Watcher
	// Watch routes the one-shot watch to the session's default watcher.
	Watch bool
	// Ctx tags the async Result for correlation. Defaults to the path.
	Ctx any
}

// GetOptions configures Get and GetAsync. The watch is only set if the node
// exists.
type GetOptions struct {
	Watcher Watcher
	Watch   bool
	Ctx     any
}

// ChildrenOptions configures Children and ChildrenAsync.
type ChildrenOptions struct {
	Watcher Watcher
	Watch   bool
	Ctx     any
}

// CreateOptions configures Create, CreateAsync, and the leaf node of
// CreateAll. The zero value makes a persistent, non-sequential node open to
// everyone.
type CreateOptions struct {
	// ACL for the new node. Empty means OpenACLUnsafe.
	ACL []ACL
	// Ephemeral nodes are removed by the service when the owning session
	// ends.
	Ephemeral bool
	// Sequential appends a monotonically increasing counter to the
	// requested name.
	Sequential bool
	Ctx        any
}

// CallOptions configures the async form of operations that take no watch or
// creation settings (Delete, Set, GetACL).
type CallOptions struct {
	Ctx any
}
