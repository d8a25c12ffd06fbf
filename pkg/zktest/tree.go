package zktest

import (
	"fmt"
	"strings"

	"github.com/go-zookeeper/zk"
)

// node is one entry in the in-memory hierarchy, holding the client data plus
// every bookkeeping field a stat snapshot reports.
type node struct {
	data     []byte
	acl      []zk.ACL
	children map[string]*node
	// nextSeq numbers the next sequential child created under this node.
	nextSeq int

	czxid, mzxid, pzxid         int64
	ctime, mtime                int64
	version, cversion, aversion int32
	ephemeralOwner              int64
}

func newNode() *node {
	return &node{children: map[string]*node{}}
}

// findNode walks down the tree along names and returns nil if any hop is
// missing.
func findNode(start *node, names []string) *node {
	n := start
	for _, name := range names {
		child, ok := n.children[name]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// splitPath breaks an absolute path into node names. The leading slash makes
// the first split element empty, so it is dropped.
func splitPath(path string) []string {
	return strings.Split(path, "/")[1:]
}

func joinPath(ancestors []string, name string) string {
	if len(ancestors) == 0 {
		return "/" + name
	}
	return "/" + strings.Join(ancestors, "/") + "/" + name
}

func parentPath(path string) string {
	if i := strings.LastIndex(path, "/"); i > 0 {
		return path[:i]
	}
	return "/"
}

func childNames(n *node) []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	return names
}

func statOf(n *node) *zk.Stat {
	if n == nil {
		return nil
	}
	return &zk.Stat{
		Czxid:          n.czxid,
		Mzxid:          n.mzxid,
		Ctime:          n.ctime,
		Mtime:          n.mtime,
		Version:        n.version,
		Cversion:       n.cversion,
		Aversion:       n.aversion,
		EphemeralOwner: n.ephemeralOwner,
		DataLength:     int32(len(n.data)),
		NumChildren:    int32(len(n.children)),
		Pzxid:          n.pzxid,
	}
}

// validatePath enforces the same path shape the real service does: absolute,
// not the bare root, and no empty node names.
func validatePath(path string) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: %q does not start at the root", zk.ErrInvalidPath, path)
	}
	if path == "/" {
		return fmt.Errorf("%w: path cannot be the root", zk.ErrInvalidPath)
	}
	for _, name := range strings.Split(path, "/")[1:] {
		if name == "" {
			return fmt.Errorf("%w: %q contains an empty node name", zk.ErrInvalidPath, path)
		}
	}
	return nil
}
