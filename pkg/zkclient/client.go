// Package zkclient is a convenience layer over a ZooKeeper connection. Every
// primitive operation comes in a blocking form and an async form that returns
// a Pending handle and optionally invokes a callback, plus recursive helpers
// for creating a path's ancestors and deleting a subtree.
package zkclient

import (
	"fmt"

	"github.com/go-zookeeper/zk"
	"github.com/golang/glog"
)

// Client wraps an established session with the coordination service. It is
// safe for concurrent use; the layer adds no locking beyond what the wire
// client provides.
type Client struct {
	conn Conn
	// defaultWatcher receives one-shot watch events for operations called
	// with Watch: true.
	defaultWatcher Watcher
}

// New wraps an already established connection. Most callers use Connect.
func New(conn Conn) *Client {
	return &Client{conn: conn}
}

// Connect establishes a session and blocks until it is usable: the returned
// client has already observed the session's first connected notification.
// Every session event, including that first one, is forwarded to the
// options watcher if present.
func Connect(servers []string, o ConnectOptions) (*Client, error) {
	timeout := o.SessionTimeout
	if timeout == 0 {
		timeout = DefaultSessionTimeout
	}
	conn, events, err := dialer(servers, timeout)
	if err != nil {
		return nil, fmt.Errorf("dialing zookeeper: %w", err)
	}

	connected := make(chan struct{})
	go watchSession(events, o.Watcher, connected)
	<-connected

	return &Client{conn: conn, defaultWatcher: o.Watcher}, nil
}

// watchSession forwards every session event to the user watcher and releases
// the connect wait exactly once, on the first connected notification. The
// release happens before the forward so Connect never returns after the
// watcher has moved past the event that unblocked it.
func watchSession(events <-chan zk.Event, w Watcher, connected chan<- struct{}) {
	released := false
	for ev := range events {
		if !released && stateFromZK(ev.State) == StateConnected {
			released = true
			close(connected)
		}
		if w != nil {
			w(eventFromZK(ev))
		}
	}
}

// State reports the session's current connection state.
func (c *Client) State() State {
	return stateFromZK(c.conn.State())
}

// SessionID returns the service-assigned session identifier.
func (c *Client) SessionID() int64 {
	return c.conn.SessionID()
}

// AddAuth registers authentication credentials with the session. The bytes
// are passed through opaquely; the scheme decides their meaning.
func (c *Client) AddAuth(scheme string, auth []byte) error {
	if err := c.conn.AddAuth(scheme, auth); err != nil {
		glog.V(2).Infof("zk add-auth scheme=%s failed: %v", scheme, err)
		return fmt.Errorf("adding auth info: %w", err)
	}
	return nil
}

// Close tears down the underlying session. The service removes any ephemeral
// nodes the session owned.
func (c *Client) Close() {
	c.conn.Close()
}

// pickWatcher resolves the per-operation watch request: an explicit watcher
// wins over the Watch flag, which falls back to the session default watcher.
func (c *Client) pickWatcher(w Watcher, watch bool) Watcher {
	if w != nil {
		return w
	}
	if watch {
		return c.defaultWatcher
	}
	return nil
}
