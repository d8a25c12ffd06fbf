package zkclient

import (
	"errors"
	"testing"
	"time"

	"github.com/go-zookeeper/zk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingWait(t *testing.T) {
	p := newPending()

	select {
	case <-p.Done():
		t.Fatal("pending resolved before anything happened")
	default:
	}

	go p.resolve(Result{Path: "/a", Name: "/a"})

	res := p.Wait()
	assert.Equal(t, "/a", res.Path)

	// After resolution every reader sees the same record.
	res, ok := p.WaitTimeout(time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, "/a", res.Path)
}

func TestPendingWaitTimeout(t *testing.T) {
	p := newPending()
	_, ok := p.WaitTimeout(5 * time.Millisecond)
	assert.False(t, ok)
}

func TestBridgeResolvesBeforeCallback(t *testing.T) {
	p := newPending()

	resolvedFirst := false
	deliver := bridge(p, func(r Result) {
		select {
		case <-p.Done():
			resolvedFirst = true
		default:
		}
	})

	deliver(Result{Path: "/a"})
	assert.True(t, resolvedFirst)
	assert.Equal(t, "/a", p.Wait().Path)
}

func TestBridgeNilCallback(t *testing.T) {
	p := newPending()
	bridge(p, nil)(Result{Path: "/a"})
	assert.Equal(t, "/a", p.Wait().Path)
}

func TestCompletionsNormalize(t *testing.T) {
	var got Result
	capture := func(r Result) { got = r }
	boom := errors.New("boom")

	stringCompletion("create", "/a", "ctx", capture)("/a0000000001", nil)
	assert.Equal(t, Result{Path: "/a", Ctx: "ctx", Name: "/a0000000001"}, got)

	statCompletion("exists", "/a", "/a", capture)(&zk.Stat{Version: 2}, nil)
	require.NotNil(t, got.Stat)
	assert.Equal(t, int32(2), got.Stat.Version)
	assert.Equal(t, "/a", got.Ctx)

	dataCompletion("get", "/a", "/a", capture)([]byte("payload"), &zk.Stat{}, nil)
	assert.Equal(t, []byte("payload"), got.Data)

	childrenCompletion("children", "/a", "/a", capture)([]string{"b", "c"}, &zk.Stat{}, nil)
	assert.Equal(t, []string{"b", "c"}, got.Children)

	aclCompletion("get-acl", "/a", "/a", capture)(aclToZK(OpenACLUnsafe()), &zk.Stat{}, nil)
	assert.Equal(t, OpenACLUnsafe(), got.ACL)

	voidCompletion("delete", "/a", "/a", capture)(boom)
	assert.Equal(t, Result{Err: boom, Path: "/a", Ctx: "/a"}, got)
}
