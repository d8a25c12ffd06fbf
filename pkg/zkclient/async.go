package zkclient

import (
	"github.com/go-zookeeper/zk"
)

// The async form of each operation returns immediately with a Pending handle
// and issues the call on its own goroutine. The handle resolves with the
// canonical Result before the optional callback runs. Expected-absence
// conditions are not special-cased here: async callers always see the
// service's real status in Result.Err.

func ctxOrPath(ctx any, path string) any {
	if ctx != nil {
		return ctx
	}
	return path
}

// ExistsAsync issues the existence check in the background. An absent node
// resolves with Err set to zk.ErrNoNode and a nil Stat.
func (c *Client) ExistsAsync(path string, o ExistsOptions, cb Callback) *Pending {
	p := newPending()
	deliver := statCompletion("exists", path, ctxOrPath(o.Ctx, path), bridge(p, cb))
	go func() {
		ok, stat, err := c.existsRPC(path, o.Watcher, o.Watch)
		if err == nil && !ok {
			stat, err = nil, zk.ErrNoNode
		}
		deliver(stat, err)
	}()
	return p
}

// CreateAsync issues the create in the background; the resolved Result's Name
// holds the node's actual name.
func (c *Client) CreateAsync(path string, data []byte, o CreateOptions, cb Callback) *Pending {
	p := newPending()
	deliver := stringCompletion("create", path, ctxOrPath(o.Ctx, path), bridge(p, cb))
	go func() {
		deliver(c.conn.Create(path, data, createFlags(o), createACL(o)))
	}()
	return p
}

// DeleteAsync issues the delete in the background.
func (c *Client) DeleteAsync(path string, version int32, o CallOptions, cb Callback) *Pending {
	p := newPending()
	deliver := voidCompletion("delete", path, ctxOrPath(o.Ctx, path), bridge(p, cb))
	go func() {
		deliver(c.conn.Delete(path, version))
	}()
	return p
}

// GetAsync issues the read in the background.
func (c *Client) GetAsync(path string, o GetOptions, cb Callback) *Pending {
	p := newPending()
	deliver := dataCompletion("get", path, ctxOrPath(o.Ctx, path), bridge(p, cb))
	go func() {
		deliver(c.getRPC(path, o.Watcher, o.Watch))
	}()
	return p
}

// SetAsync issues the write in the background.
func (c *Client) SetAsync(path string, data []byte, version int32, o CallOptions, cb Callback) *Pending {
	p := newPending()
	deliver := statCompletion("set", path, ctxOrPath(o.Ctx, path), bridge(p, cb))
	go func() {
		deliver(c.conn.Set(path, data, version))
	}()
	return p
}

// ChildrenAsync issues the child listing in the background.
func (c *Client) ChildrenAsync(path string, o ChildrenOptions, cb Callback) *Pending {
	p := newPending()
	deliver := childrenCompletion("children", path, ctxOrPath(o.Ctx, path), bridge(p, cb))
	go func() {
		deliver(c.childrenRPC(path, o.Watcher, o.Watch))
	}()
	return p
}

// GetACLAsync issues the ACL read in the background.
func (c *Client) GetACLAsync(path string, o CallOptions, cb Callback) *Pending {
	p := newPending()
	deliver := aclCompletion("get-acl", path, ctxOrPath(o.Ctx, path), bridge(p, cb))
	go func() {
		deliver(c.conn.GetACL(path))
	}()
	return p
}
