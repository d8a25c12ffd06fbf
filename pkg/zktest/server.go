// Package zktest is an in-memory stand-in for a ZooKeeper server. It
// implements the same method set as the real wire client's connection with
// real create/delete/watch semantics, so code built on zkclient can be
// tested hermetically.
package zktest

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-zookeeper/zk"
)

type watchKind int

const (
	watchData watchKind = iota
	watchExist
	watchChild
)

type watchKey struct {
	path string
	kind watchKind
}

// AuthInfo is one credential registered through AddAuth.
type AuthInfo struct {
	Scheme string
	Auth   []byte
}

var nextSessionID atomic.Int64

// Server is a single-session, in-memory coordination service. All methods
// are safe for concurrent use.
type Server struct {
	mu        sync.Mutex
	root      *node
	epoch     int32
	counter   int32
	sessionID int64
	closed    bool

	// watches holds the pending one-shot registrations per path and kind.
	watches    map[watchKey][]chan zk.Event
	ephemerals map[string]struct{}
	auths      []AuthInfo

	session chan zk.Event
}

// NewServer returns a server whose session is already established: the
// session event channel replays the connecting handshake ending in the
// has-session notification.
func NewServer() *Server {
	s := &Server{
		root:       newNode(),
		epoch:      1,
		sessionID:  nextSessionID.Add(1),
		watches:    map[watchKey][]chan zk.Event{},
		ephemerals: map[string]struct{}{},
		session:    make(chan zk.Event, 8),
	}
	for _, state := range []zk.State{zk.StateConnecting, zk.StateConnected, zk.StateHasSession} {
		s.session <- zk.Event{Type: zk.EventSession, State: state}
	}
	return s
}

// SessionEvents exposes the session event stream, playing the same role as
// the event channel returned when dialing a real server.
func (s *Server) SessionEvents() <-chan zk.Event {
	return s.session
}

// Auths returns the credentials registered so far, in order.
func (s *Server) Auths() []AuthInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]AuthInfo(nil), s.auths...)
}

func (s *Server) AddAuth(scheme string, auth []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return zk.ErrConnectionClosed
	}
	s.auths = append(s.auths, AuthInfo{Scheme: scheme, Auth: auth})
	return nil
}

func (s *Server) Create(path string, data []byte, flags int32, acl []zk.ACL) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", zk.ErrConnectionClosed
	}
	if err := validatePath(path); err != nil {
		return "", err
	}

	names := splitPath(path)
	parent := findNode(s.root, names[:len(names)-1])
	if parent == nil {
		return "", zk.ErrNoNode
	}
	if parent.ephemeralOwner != 0 {
		return "", zk.ErrNoChildrenForEphemerals
	}

	name := names[len(names)-1]
	if flags&zk.FlagSequence != 0 {
		name = fmt.Sprintf("%s%010d", name, parent.nextSeq)
		parent.nextSeq++
	}
	if _, ok := parent.children[name]; ok {
		return "", zk.ErrNodeExists
	}

	zxid := s.nextZxid()
	now := time.Now().UnixMilli()
	child := newNode()
	child.data = data
	child.acl = append([]zk.ACL(nil), acl...)
	child.czxid, child.mzxid = zxid, zxid
	child.ctime, child.mtime = now, now

	fullPath := joinPath(names[:len(names)-1], name)
	if flags&zk.FlagEphemeral != 0 {
		child.ephemeralOwner = s.sessionID
		s.ephemerals[fullPath] = struct{}{}
	}

	parent.children[name] = child
	parent.cversion++
	parent.pzxid = zxid

	s.fire(watchExist, fullPath, zk.EventNodeCreated)
	s.fire(watchChild, parentPath(fullPath), zk.EventNodeChildrenChanged)
	return fullPath, nil
}

func (s *Server) Delete(path string, version int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return zk.ErrConnectionClosed
	}
	if err := validatePath(path); err != nil {
		return err
	}
	return s.deleteLocked(path, version)
}

func (s *Server) deleteLocked(path string, version int32) error {
	names := splitPath(path)
	parent := findNode(s.root, names[:len(names)-1])
	if parent == nil {
		return zk.ErrNoNode
	}
	name := names[len(names)-1]
	n, ok := parent.children[name]
	if !ok {
		return zk.ErrNoNode
	}
	if version != -1 && version != n.version {
		return zk.ErrBadVersion
	}
	if len(n.children) > 0 {
		return zk.ErrNotEmpty
	}

	delete(parent.children, name)
	delete(s.ephemerals, path)
	parent.cversion++
	parent.pzxid = s.nextZxid()

	s.fire(watchExist, path, zk.EventNodeDeleted)
	s.fire(watchData, path, zk.EventNodeDeleted)
	s.fire(watchChild, path, zk.EventNodeDeleted)
	s.fire(watchChild, parentPath(path), zk.EventNodeChildrenChanged)
	return nil
}

func (s *Server) Exists(path string) (bool, *zk.Stat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, nil, zk.ErrConnectionClosed
	}
	if err := validatePath(path); err != nil {
		return false, nil, err
	}
	n := findNode(s.root, splitPath(path))
	return n != nil, statOf(n), nil
}

func (s *Server) ExistsW(path string) (bool, *zk.Stat, <-chan zk.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, nil, nil, zk.ErrConnectionClosed
	}
	if err := validatePath(path); err != nil {
		return false, nil, nil, err
	}
	n := findNode(s.root, splitPath(path))
	// Existence watches register whether or not the node is there yet;
	// watch the data channel once it exists so a later write also fires.
	kind := watchExist
	if n != nil {
		kind = watchData
	}
	return n != nil, statOf(n), s.addWatch(kind, path), nil
}

func (s *Server) Get(path string) ([]byte, *zk.Stat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, nil, zk.ErrConnectionClosed
	}
	n := findNode(s.root, splitPath(path))
	if n == nil {
		return nil, nil, zk.ErrNoNode
	}
	return append([]byte(nil), n.data...), statOf(n), nil
}

func (s *Server) GetW(path string) ([]byte, *zk.Stat, <-chan zk.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, nil, nil, zk.ErrConnectionClosed
	}
	n := findNode(s.root, splitPath(path))
	if n == nil {
		// The service does not set a watch on a missing node for reads.
		return nil, nil, nil, zk.ErrNoNode
	}
	return append([]byte(nil), n.data...), statOf(n), s.addWatch(watchData, path), nil
}

func (s *Server) Set(path string, data []byte, version int32) (*zk.Stat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, zk.ErrConnectionClosed
	}
	n := findNode(s.root, splitPath(path))
	if n == nil {
		return nil, zk.ErrNoNode
	}
	if version != -1 && version != n.version {
		return nil, zk.ErrBadVersion
	}

	n.data = data
	n.version++
	n.mzxid = s.nextZxid()
	n.mtime = time.Now().UnixMilli()

	s.fire(watchData, path, zk.EventNodeDataChanged)
	return statOf(n), nil
}

func (s *Server) Children(path string) ([]string, *zk.Stat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, nil, zk.ErrConnectionClosed
	}
	n := findNode(s.root, splitPath(path))
	if n == nil {
		return nil, nil, zk.ErrNoNode
	}
	return childNames(n), statOf(n), nil
}

func (s *Server) ChildrenW(path string) ([]string, *zk.Stat, <-chan zk.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, nil, nil, zk.ErrConnectionClosed
	}
	n := findNode(s.root, splitPath(path))
	if n == nil {
		return nil, nil, nil, zk.ErrNoNode
	}
	return childNames(n), statOf(n), s.addWatch(watchChild, path), nil
}

func (s *Server) GetACL(path string) ([]zk.ACL, *zk.Stat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, nil, zk.ErrConnectionClosed
	}
	n := findNode(s.root, splitPath(path))
	if n == nil {
		return nil, nil, zk.ErrNoNode
	}
	return append([]zk.ACL(nil), n.acl...), statOf(n), nil
}

func (s *Server) SessionID() int64 {
	return s.sessionID
}

func (s *Server) State() zk.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return zk.StateDisconnected
	}
	return zk.StateHasSession
}

// Close ends the session. Every ephemeral node the session owns is removed,
// firing its watches, and the session event stream is terminated.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for path := range s.ephemerals {
		// Ephemeral nodes never have children, so each delete stands alone.
		_ = s.deleteLocked(path, -1)
	}
	s.closed = true
	s.session <- zk.Event{Type: zk.EventSession, State: zk.StateDisconnected}
	close(s.session)
}

// nextZxid hands out transaction IDs the way the real service does: the high
// 32 bits hold the leadership epoch, the low 32 bits a counter.
func (s *Server) nextZxid() int64 {
	s.counter++
	return int64(s.epoch)<<32 | int64(s.counter)
}

func (s *Server) addWatch(kind watchKind, path string) <-chan zk.Event {
	ch := make(chan zk.Event, 1)
	key := watchKey{path: path, kind: kind}
	s.watches[key] = append(s.watches[key], ch)
	return ch
}

// fire delivers the one-shot notification to every registration for the path
// and kind, then drops them: a fired watch is spent.
func (s *Server) fire(kind watchKind, path string, typ zk.EventType) {
	key := watchKey{path: path, kind: kind}
	for _, ch := range s.watches[key] {
		ch <- zk.Event{Type: typ, State: zk.StateHasSession, Path: path}
		close(ch)
	}
	delete(s.watches, key)
}
