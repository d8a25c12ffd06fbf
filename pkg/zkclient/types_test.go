package zkclient

import (
	"testing"
	"time"

	"github.com/go-zookeeper/zk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatFromZK(t *testing.T) {
	// Absence propagates instead of turning into a zero record.
	assert.Nil(t, statFromZK(nil))

	now := time.Now().UnixMilli()
	stat := statFromZK(&zk.Stat{
		Czxid:          10,
		Mzxid:          12,
		Ctime:          now,
		Mtime:          now,
		Version:        3,
		Cversion:       4,
		Aversion:       1,
		EphemeralOwner: 99,
		DataLength:     5,
		NumChildren:    2,
		Pzxid:          13,
	})
	require.NotNil(t, stat)
	assert.Equal(t, int64(10), stat.Czxid)
	assert.Equal(t, int64(12), stat.Mzxid)
	assert.Equal(t, time.UnixMilli(now), stat.Ctime)
	assert.Equal(t, time.UnixMilli(now), stat.Mtime)
	assert.Equal(t, int32(3), stat.Version)
	assert.Equal(t, int32(4), stat.Cversion)
	assert.Equal(t, int32(1), stat.Aversion)
	assert.Equal(t, int64(99), stat.EphemeralOwner)
	assert.Equal(t, int32(5), stat.DataLength)
	assert.Equal(t, int32(2), stat.NumChildren)
	assert.Equal(t, int64(13), stat.Pzxid)
}

func TestStateFromZK(t *testing.T) {
	tests := []struct {
		name string
		in   zk.State
		want State
	}{
		{name: "connecting", in: zk.StateConnecting, want: StateConnecting},
		{name: "disconnected maps to connecting", in: zk.StateDisconnected, want: StateConnecting},
		{name: "tcp up but no session yet", in: zk.StateConnected, want: StateAssociating},
		{name: "has session", in: zk.StateHasSession, want: StateConnected},
		{name: "read only still counts as connected", in: zk.StateConnectedReadOnly, want: StateConnected},
		{name: "auth failed", in: zk.StateAuthFailed, want: StateAuthFailed},
		{name: "expired maps to closed", in: zk.StateExpired, want: StateClosed},
		{name: "unknown maps to closed", in: zk.StateUnknown, want: StateClosed},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, stateFromZK(test.in))
		})
	}
}

func TestEventFromZK(t *testing.T) {
	ev := eventFromZK(zk.Event{
		Type:  zk.EventNodeDataChanged,
		State: zk.StateHasSession,
		Path:  "/config/endpoints",
	})
	assert.Equal(t, Event{
		Type:  EventNodeDataChanged,
		State: StateConnected,
		Path:  "/config/endpoints",
	}, ev)
}

func TestSymbolicNames(t *testing.T) {
	assert.Equal(t, []string{"CONNECTING", "ASSOCIATING", "CONNECTED", "CLOSED", "AUTH_FAILED"}, StateNames())
	assert.Equal(t,
		[]string{"NodeCreated", "NodeDeleted", "NodeDataChanged", "NodeChildrenChanged", "Session", "NotWatching"},
		EventTypeNames())

	assert.Equal(t, "CONNECTED", StateConnected.String())
	assert.Equal(t, "UNKNOWN", State(42).String())
	assert.Equal(t, "NodeCreated", EventNodeCreated.String())
	assert.Equal(t, "Unknown", EventType(42).String())
}
