package zkclient

import (
	"github.com/go-zookeeper/zk"
)

// Watcher handles a single translated watch event. A watch is one-shot: the
// handler fires at most once per registration, after which the caller must
// re-register to keep observing. Handlers run on a watch-delivery goroutine
// and should not block.
type Watcher func(Event)

// fireWatch adapts a user watcher to the wire client's one-shot event
// channel. The raw event is translated and forwarded unfiltered; deciding
// which event types matter is the handler's job.
func fireWatch(ch <-chan zk.Event, w Watcher) {
	go func() {
		ev, ok := <-ch
		if !ok {
			return
		}
		w(eventFromZK(ev))
	}()
}
