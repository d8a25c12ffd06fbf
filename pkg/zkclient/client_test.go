package zkclient

import (
	"errors"
	"testing"
	"time"

	"github.com/go-zookeeper/zk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mikekulinski/zkclient/pkg/zkclient/mocks"
	"github.com/mikekulinski/zkclient/pkg/zktest"
)

func TestClient_Exists(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConn(ctrl)
	client := New(conn)

	conn.EXPECT().Exists("/a").Return(true, &zk.Stat{Version: 7}, nil)
	stat, err := client.Exists("/a", ExistsOptions{})
	require.NoError(t, err)
	require.NotNil(t, stat)
	assert.Equal(t, int32(7), stat.Version)

	conn.EXPECT().Exists("/missing").Return(false, nil, nil)
	stat, err = client.Exists("/missing", ExistsOptions{})
	require.NoError(t, err)
	assert.Nil(t, stat)
}

func TestClient_ExplicitWatcherBeatsWatchFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConn(ctrl)
	client := &Client{
		conn: conn,
		defaultWatcher: func(Event) {
			t.Error("default watcher should not fire when an explicit one is given")
		},
	}

	raw := make(chan zk.Event, 1)
	conn.EXPECT().ExistsW("/a").Return(true, &zk.Stat{}, (<-chan zk.Event)(raw), nil)

	events := make(chan Event, 1)
	_, err := client.Exists("/a", ExistsOptions{
		Watcher: func(ev Event) { events <- ev },
		Watch:   true,
	})
	require.NoError(t, err)

	raw <- zk.Event{Type: zk.EventNodeDeleted, State: zk.StateHasSession, Path: "/a"}
	select {
	case ev := <-events:
		assert.Equal(t, EventNodeDeleted, ev.Type)
		assert.Equal(t, "/a", ev.Path)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the watch to fire")
	}
}

func TestClient_WatchFlagUsesDefaultWatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConn(ctrl)

	events := make(chan Event, 1)
	client := &Client{
		conn:           conn,
		defaultWatcher: func(ev Event) { events <- ev },
	}

	raw := make(chan zk.Event, 1)
	conn.EXPECT().GetW("/a").Return([]byte("x"), &zk.Stat{}, (<-chan zk.Event)(raw), nil)

	_, _, err := client.Get("/a", GetOptions{Watch: true})
	require.NoError(t, err)

	raw <- zk.Event{Type: zk.EventNodeDataChanged, State: zk.StateHasSession, Path: "/a"}
	select {
	case ev := <-events:
		assert.Equal(t, EventNodeDataChanged, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the watch to fire")
	}
}

func TestClient_WatchFlagWithoutDefaultWatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConn(ctrl)
	client := New(conn)

	// With no session default watcher the flag degrades to a plain call.
	conn.EXPECT().Children("/a").Return([]string{"b"}, &zk.Stat{}, nil)
	children, ok, err := client.Children("/a", ChildrenOptions{Watch: true})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"b"}, children)
}

func TestClient_CreateAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConn(ctrl)
	client := New(conn)

	conn.EXPECT().Create("/a", gomock.Any(), gomock.Any(), gomock.Any()).Return("", zk.ErrNodeExists)
	name, err := client.Create("/a", nil, CreateOptions{})
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestClient_CreateFlagsAndDefaultACL(t *testing.T) {
	tests := []struct {
		name      string
		opts      CreateOptions
		wantFlags int32
	}{
		{name: "persistent", opts: CreateOptions{}, wantFlags: 0},
		{name: "ephemeral", opts: CreateOptions{Ephemeral: true}, wantFlags: zk.FlagEphemeral},
		{name: "sequential", opts: CreateOptions{Sequential: true}, wantFlags: zk.FlagSequence},
		{
			name:      "ephemeral sequential",
			opts:      CreateOptions{Ephemeral: true, Sequential: true},
			wantFlags: zk.FlagEphemeral | zk.FlagSequence,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			conn := mocks.NewMockConn(ctrl)
			client := New(conn)

			conn.EXPECT().
				Create("/a", []byte("d"), test.wantFlags, aclToZK(OpenACLUnsafe())).
				Return("/a", nil)
			name, err := client.Create("/a", []byte("d"), test.opts)
			require.NoError(t, err)
			assert.Equal(t, "/a", name)
		})
	}
}

func TestClient_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConn(ctrl)
	client := New(conn)

	conn.EXPECT().Delete("/a", AnyVersion).Return(nil)
	deleted, err := client.Delete("/a", AnyVersion)
	require.NoError(t, err)
	assert.True(t, deleted)

	conn.EXPECT().Delete("/missing", AnyVersion).Return(zk.ErrNoNode)
	deleted, err = client.Delete("/missing", AnyVersion)
	require.NoError(t, err)
	assert.False(t, deleted)

	conn.EXPECT().Delete("/a", int32(3)).Return(zk.ErrBadVersion)
	_, err = client.Delete("/a", 3)
	assert.ErrorIs(t, err, zk.ErrBadVersion)
}

func TestClient_ChildrenMissingNode(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConn(ctrl)
	client := New(conn)

	conn.EXPECT().Children("/missing").Return(nil, nil, zk.ErrNoNode)
	children, ok, err := client.Children("/missing", ChildrenOptions{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, children)
}

func TestClient_ChildrenSorted(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConn(ctrl)
	client := New(conn)

	conn.EXPECT().Children("/a").Return([]string{"c", "a", "b"}, &zk.Stat{}, nil)
	children, ok, err := client.Children("/a", ChildrenOptions{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, children)
}

func TestClient_ServiceErrorsPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConn(ctrl)
	client := New(conn)

	conn.EXPECT().Get("/a").Return(nil, nil, zk.ErrNoAuth)
	_, _, err := client.Get("/a", GetOptions{})
	assert.ErrorIs(t, err, zk.ErrNoAuth)

	conn.EXPECT().Set("/a", []byte("d"), int32(1)).Return(nil, zk.ErrBadVersion)
	_, err = client.Set("/a", []byte("d"), 1)
	assert.ErrorIs(t, err, zk.ErrBadVersion)

	conn.EXPECT().GetACL("/a").Return(nil, nil, zk.ErrNoNode)
	_, _, err = client.GetACL("/a")
	assert.ErrorIs(t, err, zk.ErrNoNode)
}

func TestClient_AddAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConn(ctrl)
	client := New(conn)

	conn.EXPECT().AddAuth("digest", []byte("user:pass")).Return(nil)
	require.NoError(t, client.AddAuth("digest", []byte("user:pass")))

	boom := errors.New("boom")
	conn.EXPECT().AddAuth("digest", gomock.Any()).Return(boom)
	assert.ErrorIs(t, client.AddAuth("digest", []byte("other:pass")), boom)
}

func TestClient_State(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConn(ctrl)
	client := New(conn)

	conn.EXPECT().State().Return(zk.StateHasSession)
	assert.Equal(t, StateConnected, client.State())
}

func TestConnect(t *testing.T) {
	srv := zktest.NewServer()
	orig := dialer
	defer func() { dialer = orig }()

	var gotTimeout time.Duration
	dialer = func(servers []string, timeout time.Duration) (Conn, <-chan zk.Event, error) {
		gotTimeout = timeout
		return srv, srv.SessionEvents(), nil
	}

	events := make(chan Event, 8)
	client, err := Connect([]string{"ignored:2181"}, ConnectOptions{
		Watcher: func(ev Event) { events <- ev },
	})
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, DefaultSessionTimeout, gotTimeout)
	assert.Equal(t, StateConnected, client.State())

	// Every session event is forwarded to the watcher, including the
	// connected notification that released Connect.
	var states []State
	for i := 0; i < 3; i++ {
		select {
		case ev := <-events:
			states = append(states, ev.State)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for session events")
		}
	}
	assert.Contains(t, states, StateConnected)
}
