package zkclient

import (
	"fmt"
	"strings"
)

// CreateAll ensures every ancestor of path exists before creating the leaf
// with the caller's data and options. Intermediate nodes are always created
// as plain persistent nodes with open ACLs, whatever the caller's options
// say; segments that already exist are skipped. The walk composes the
// blocking operations only; async callers should not use it. Returns the
// path of the leaf actually created, which differs from the requested path
// under Sequential.
func (c *Client) CreateAll(path string, data []byte, o CreateOptions) (string, error) {
	if err := validatePath(path); err != nil {
		return "", err
	}

	segments := strings.Split(path, "/")[1:]
	prefix := ""
	for i, segment := range segments {
		node := prefix + "/" + segment
		last := i == len(segments)-1

		stat, err := c.Exists(node, ExistsOptions{})
		if err != nil {
			return "", err
		}
		if stat != nil {
			prefix = node
			continue
		}

		if !last {
			if _, err := c.Create(node, nil, CreateOptions{}); err != nil {
				return "", err
			}
			prefix = node
			continue
		}

		name, err := c.Create(node, data, o)
		if err != nil {
			return "", err
		}
		if name == "" {
			// Lost a race: the leaf appeared between the existence
			// check and the create.
			name = node
		}
		prefix = name
	}
	return prefix, nil
}

// DeleteAll removes the node at path and everything below it, children
// first. A missing node degenerates to a single no-op delete: the return is
// false with a nil error.
func (c *Client) DeleteAll(path string) (bool, error) {
	if err := validatePath(path); err != nil {
		return false, err
	}

	children, ok, err := c.Children(path, ChildrenOptions{})
	if err != nil {
		return false, err
	}
	if ok {
		for _, child := range children {
			if _, err := c.DeleteAll(path + "/" + child); err != nil {
				return false, err
			}
		}
	}
	return c.Delete(path, AnyVersion)
}

// validatePath verifies that a path is absolute, non-root, and free of empty
// segments before the recursive walks take it apart.
func validatePath(path string) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path %q does not start at the root", path)
	}
	if path == "/" {
		return fmt.Errorf("path cannot be the root")
	}
	for _, name := range strings.Split(path, "/")[1:] {
		if name == "" {
			return fmt.Errorf("path %q contains an empty node name", path)
		}
	}
	return nil
}
