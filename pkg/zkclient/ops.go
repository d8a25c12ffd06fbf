package zkclient

import (
	"errors"
	"sort"

	"github.com/go-zookeeper/zk"
	"github.com/golang/glog"
)

// Exists returns the node's metadata, or nil if no node exists at path.
func (c *Client) Exists(path string, o ExistsOptions) (*Stat, error) {
	ok, stat, err := c.existsRPC(path, o.Watcher, o.Watch)
	if err != nil {
		glog.V(2).Infof("zk exists %s failed: %v", path, err)
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return statFromZK(stat), nil
}

// Create makes a node at path holding data. It returns the node's actual
// name, which differs from the requested path under Sequential. If a node
// already exists at path, Create returns "" with a nil error.
func (c *Client) Create(path string, data []byte, o CreateOptions) (string, error) {
	name, err := c.conn.Create(path, data, createFlags(o), createACL(o))
	if errors.Is(err, zk.ErrNodeExists) {
		return "", nil
	}
	if err != nil {
		glog.V(2).Infof("zk create %s failed: %v", path, err)
		return "", err
	}
	return name, nil
}

// Delete removes the node at path if it is at the expected version; pass
// AnyVersion to skip the check. Deleting a nonexistent node is not an error:
// Delete returns false with a nil error.
func (c *Client) Delete(path string, version int32) (bool, error) {
	err := c.conn.Delete(path, version)
	if errors.Is(err, zk.ErrNoNode) {
		return false, nil
	}
	if err != nil {
		glog.V(2).Infof("zk delete %s failed: %v", path, err)
		return false, err
	}
	return true, nil
}

// Get reads the node's data together with the metadata current as of the
// same read.
func (c *Client) Get(path string, o GetOptions) ([]byte, *Stat, error) {
	data, stat, err := c.getRPC(path, o.Watcher, o.Watch)
	if err != nil {
		glog.V(2).Infof("zk get %s failed: %v", path, err)
		return nil, nil, err
	}
	return data, statFromZK(stat), nil
}

// Set writes data to the node at path if it is at the expected version and
// returns the node's new metadata.
func (c *Client) Set(path string, data []byte, version int32) (*Stat, error) {
	stat, err := c.conn.Set(path, data, version)
	if err != nil {
		glog.V(2).Infof("zk set %s failed: %v", path, err)
		return nil, err
	}
	return statFromZK(stat), nil
}

// Children lists the names of the node's children in sorted order. The ok
// return is false, with a nil error, when no node exists at path.
func (c *Client) Children(path string, o ChildrenOptions) ([]string, bool, error) {
	children, _, err := c.childrenRPC(path, o.Watcher, o.Watch)
	if errors.Is(err, zk.ErrNoNode) {
		return nil, false, nil
	}
	if err != nil {
		glog.V(2).Infof("zk children %s failed: %v", path, err)
		return nil, false, err
	}
	return children, true, nil
}

// GetACL reads the node's access-control list and metadata.
func (c *Client) GetACL(path string) ([]ACL, *Stat, error) {
	acl, stat, err := c.conn.GetACL(path)
	if err != nil {
		glog.V(2).Infof("zk get-acl %s failed: %v", path, err)
		return nil, nil, err
	}
	return aclFromZK(acl), statFromZK(stat), nil
}

// existsRPC issues the existence check, registering a one-shot watch when the
// resolved watcher is non-nil.
func (c *Client) existsRPC(path string, w Watcher, watch bool) (bool, *zk.Stat, error) {
	if w = c.pickWatcher(w, watch); w != nil {
		ok, stat, ch, err := c.conn.ExistsW(path)
		if err == nil {
			fireWatch(ch, w)
		}
		return ok, stat, err
	}
	return c.conn.Exists(path)
}

func (c *Client) getRPC(path string, w Watcher, watch bool) ([]byte, *zk.Stat, error) {
	if w = c.pickWatcher(w, watch); w != nil {
		data, stat, ch, err := c.conn.GetW(path)
		if err == nil {
			fireWatch(ch, w)
		}
		return data, stat, err
	}
	return c.conn.Get(path)
}

func (c *Client) childrenRPC(path string, w Watcher, watch bool) ([]string, *zk.Stat, error) {
	var children []string
	var stat *zk.Stat
	var err error
	if w = c.pickWatcher(w, watch); w != nil {
		var ch <-chan zk.Event
		children, stat, ch, err = c.conn.ChildrenW(path)
		if err == nil {
			fireWatch(ch, w)
		}
	} else {
		children, stat, err = c.conn.Children(path)
	}
	if err != nil {
		return nil, nil, err
	}
	// The service returns child names in no particular order.
	sort.Strings(children)
	return children, stat, nil
}

func createFlags(o CreateOptions) int32 {
	var flags int32
	if o.Ephemeral {
		flags |= zk.FlagEphemeral
	}
	if o.Sequential {
		flags |= zk.FlagSequence
	}
	return flags
}

func createACL(o CreateOptions) []zk.ACL {
	if len(o.ACL) == 0 {
		return aclToZK(OpenACLUnsafe())
	}
	return aclToZK(o.ACL)
}
