package zkclient

import (
	"fmt"

	"github.com/go-zookeeper/zk"
)

// Perm is a single access-control permission bit. Combine with bitwise OR or
// CombinePerms. The values match the wire protocol's.
type Perm int32

const (
	PermRead Perm = 1 << iota
	PermWrite
	PermCreate
	PermDelete
	PermAdmin
)

// PermAll grants every permission.
const PermAll = PermRead | PermWrite | PermCreate | PermDelete | PermAdmin

var permsByName = map[string]Perm{
	"read":   PermRead,
	"write":  PermWrite,
	"create": PermCreate,
	"delete": PermDelete,
	"admin":  PermAdmin,
	"all":    PermAll,
}

// CombinePerms ORs the given permission bits into a single mask.
func CombinePerms(perms ...Perm) Perm {
	var mask Perm
	for _, p := range perms {
		mask |= p
	}
	return mask
}

// ParsePerms resolves lower-case permission names ("read", "write", "create",
// "delete", "admin", "all") into a combined mask.
func ParsePerms(names ...string) (Perm, error) {
	var mask Perm
	for _, name := range names {
		p, ok := permsByName[name]
		if !ok {
			return 0, fmt.Errorf("unknown permission %q", name)
		}
		mask |= p
	}
	return mask, nil
}

// ACLID identifies who an ACL entry applies to, e.g. ("digest", "user:hash")
// or ("world", "anyone").
type ACLID struct {
	Scheme string
	ID     string
}

// NewACLID pairs an authentication scheme with an identity value.
func NewACLID(scheme, id string) ACLID {
	return ACLID{Scheme: scheme, ID: id}
}

// ACL grants a permission mask to one identity.
type ACL struct {
	Perms Perm
	ACLID
}

// NewACL builds an ACL entry granting the combined permissions to the
// identity (scheme, id).
func NewACL(scheme, id string, perms ...Perm) ACL {
	return ACL{Perms: CombinePerms(perms...), ACLID: NewACLID(scheme, id)}
}

// OpenACLUnsafe grants everything to everyone. This is the default ACL used
// by Create when none is supplied.
func OpenACLUnsafe() []ACL {
	return []ACL{NewACL("world", "anyone", PermAll)}
}

// ReadACLUnsafe grants read access to everyone.
func ReadACLUnsafe() []ACL {
	return []ACL{NewACL("world", "anyone", PermRead)}
}

// CreatorAllACL grants everything to the credentials the session
// authenticated with via AddAuth.
func CreatorAllACL() []ACL {
	return []ACL{NewACL("auth", "", PermAll)}
}

func aclToZK(acl []ACL) []zk.ACL {
	out := make([]zk.ACL, len(acl))
	for i, a := range acl {
		out[i] = zk.ACL{Perms: int32(a.Perms), Scheme: a.Scheme, ID: a.ID}
	}
	return out
}

func aclFromZK(acl []zk.ACL) []ACL {
	if acl == nil {
		return nil
	}
	out := make([]ACL, len(acl))
	for i, a := range acl {
		out[i] = ACL{Perms: Perm(a.Perms), ACLID: ACLID{Scheme: a.Scheme, ID: a.ID}}
	}
	return out
}
