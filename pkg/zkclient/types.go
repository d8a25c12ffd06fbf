package zkclient

import (
	"time"

	"github.com/go-zookeeper/zk"
)

// State is the coarse session state of a connection. The wire client reports
// a finer-grained set of states; they collapse onto these five, which match
// the states ZooKeeper itself documents for a client session.
type State int32

const (
	StateConnecting State = iota
	StateAssociating
	StateConnected
	StateClosed
	StateAuthFailed
)

var stateNames = map[State]string{
	StateConnecting:  "CONNECTING",
	StateAssociating: "ASSOCIATING",
	StateConnected:   "CONNECTED",
	StateClosed:      "CLOSED",
	StateAuthFailed:  "AUTH_FAILED",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// StateNames returns the symbolic names of every session state.
func StateNames() []string {
	return []string{"CONNECTING", "ASSOCIATING", "CONNECTED", "CLOSED", "AUTH_FAILED"}
}

func stateFromZK(s zk.State) State {
	switch s {
	case zk.StateConnecting, zk.StateDisconnected:
		return StateConnecting
	case zk.StateConnected:
		// TCP is up but the session handshake hasn't finished.
		return StateAssociating
	case zk.StateHasSession, zk.StateConnectedReadOnly, zk.StateSaslAuthenticated:
		return StateConnected
	case zk.StateAuthFailed:
		return StateAuthFailed
	default:
		return StateClosed
	}
}

// EventType identifies what kind of change fired a watch.
type EventType int32

const (
	EventNodeCreated EventType = iota
	EventNodeDeleted
	EventNodeDataChanged
	EventNodeChildrenChanged
	EventSession
	EventNotWatching
)

var eventTypeNames = map[EventType]string{
	EventNodeCreated:         "NodeCreated",
	EventNodeDeleted:         "NodeDeleted",
	EventNodeDataChanged:     "NodeDataChanged",
	EventNodeChildrenChanged: "NodeChildrenChanged",
	EventSession:             "Session",
	EventNotWatching:         "NotWatching",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// EventTypeNames returns the symbolic names of every watch event type.
func EventTypeNames() []string {
	return []string{"NodeCreated", "NodeDeleted", "NodeDataChanged", "NodeChildrenChanged", "Session", "NotWatching"}
}

func eventTypeFromZK(t zk.EventType) EventType {
	switch t {
	case zk.EventNodeCreated:
		return EventNodeCreated
	case zk.EventNodeDeleted:
		return EventNodeDeleted
	case zk.EventNodeDataChanged:
		return EventNodeDataChanged
	case zk.EventNodeChildrenChanged:
		return EventNodeChildrenChanged
	case zk.EventNotWatching:
		return EventNotWatching
	default:
		return EventSession
	}
}

// Event is a translated watch notification.
type Event struct {
	Type  EventType
	State State
	// Path is the watched node's path. Empty for session events.
	Path string
}

func eventFromZK(e zk.Event) Event {
	return Event{
		Type:  eventTypeFromZK(e.Type),
		State: stateFromZK(e.State),
		Path:  e.Path,
	}
}

// Stat is a snapshot of a node's bookkeeping fields at the time of a read.
// It is never updated in place; every read fetches a fresh snapshot.
type Stat struct {
	// Czxid and Mzxid are the transaction IDs that created and last
	// modified the node.
	Czxid int64
	Mzxid int64
	Ctime time.Time
	Mtime time.Time
	// Version counts data writes, Cversion child-list changes, and
	// Aversion ACL changes.
	Version  int32
	Cversion int32
	Aversion int32
	// EphemeralOwner is the session ID that owns the node, or 0 if the
	// node is persistent.
	EphemeralOwner int64
	DataLength     int32
	NumChildren    int32
	// Pzxid is the transaction ID that last changed the child list.
	Pzxid int64
}

func statFromZK(s *zk.Stat) *Stat {
	if s == nil {
		return nil
	}
	return &Stat{
		Czxid:          s.Czxid,
		Mzxid:          s.Mzxid,
		Ctime:          time.UnixMilli(s.Ctime),
		Mtime:          time.UnixMilli(s.Mtime),
		Version:        s.Version,
		Cversion:       s.Cversion,
		Aversion:       s.Aversion,
		EphemeralOwner: s.EphemeralOwner,
		DataLength:     s.DataLength,
		NumChildren:    s.NumChildren,
		Pzxid:          s.Pzxid,
	}
}
