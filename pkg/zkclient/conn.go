package zkclient

import (
	"time"

	"github.com/go-zookeeper/zk"
)

// Conn is the subset of the ZooKeeper wire client that this package consumes.
// The signatures match *zk.Conn exactly, so an established connection from
// github.com/go-zookeeper/zk satisfies it directly. Tests substitute the
// in-memory server from pkg/zktest or a generated mock.
type Conn interface {
	AddAuth(scheme string, auth []byte) error
	Children(path string) ([]string, *zk.Stat, error)
	ChildrenW(path string) ([]string, *zk.Stat, <-chan zk.Event, error)
	Create(path string, data []byte, flags int32, acl []zk.ACL) (string, error)
	Delete(path string, version int32) error
	Exists(path string) (bool, *zk.Stat, error)
	ExistsW(path string) (bool, *zk.Stat, <-chan zk.Event, error)
	Get(path string) ([]byte, *zk.Stat, error)
	GetW(path string) ([]byte, *zk.Stat, <-chan zk.Event, error)
	GetACL(path string) ([]zk.ACL, *zk.Stat, error)
	Set(path string, data []byte, version int32) (*zk.Stat, error)
	SessionID() int64
	State() zk.State
	Close()
}

// dialer is swapped out in tests so Connect can be exercised without a
// real ZooKeeper ensemble.
var dialer = func(servers []string, sessionTimeout time.Duration) (Conn, <-chan zk.Event, error) {
	return zk.Connect(servers, sessionTimeout)
}
