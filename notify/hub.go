package notify

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/lineindex/lines"
)

// castBuffer is the buffer size of every caster subscription.
const castBuffer = 16

// Hub publishes change sets to subscribers.
//
// A subscriber which does not keep up with publishing never stalls the hub.
// Change sets it has not yet received are merged into a single pending
// change set, which is delivered as soon as the subscriber's channel has
// room again.
type Hub struct {
	cast   *caster.Caster
	closed atomic.Bool
}

// NewHub creates a hub. Cancelling ctx closes the hub.
func NewHub(ctx context.Context) *Hub {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Hub{cast: caster.New(ctx)}
}

// Publish sends cs to all subscribers. Empty change sets are dropped.
// Publish returns false if cs has not been sent. Published change sets
// must not be modified afterwards.
func (h *Hub) Publish(cs *lines.ChangeSet) bool {
	if cs == nil || cs.IsEmpty() {
		return false
	}
	if h.closed.Load() {
		return false
	}
	ok := h.cast.Pub(cs)
	tracer().Debugf("notify: published %v: %v", cs, ok)
	return ok
}

// Subscribe registers a subscriber which receives the change sets
// published from now on, in publishing order. If the subscriber falls
// behind, consecutive change sets are merged. The returned channel is
// closed when ctx is done, when cancel is called or when the hub is
// closed. capacity is the buffer size of the returned channel.
func (h *Hub) Subscribe(ctx context.Context, capacity int) (<-chan *lines.ChangeSet, func()) {
	if ctx == nil {
		ctx = context.Background()
	}
	out := make(chan *lines.ChangeSet, max(capacity, 0))
	// The caster closes raw on Unsub or on Close only. The subscriber's
	// ctx is handled by the forwarder, as a second close would panic.
	raw, _ := h.cast.Sub(context.Background(), castBuffer)
	done := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
		})
	}
	go h.forward(ctx, raw, out, done)
	return out, cancel
}

// forward moves change sets from raw to out. It drains raw until the caster
// closes it, so the caster never blocks on this subscriber.
func (h *Hub) forward(ctx context.Context, raw chan interface{}, out chan<- *lines.ChangeSet,
	done <-chan struct{}) {
	//
	var pending *lines.ChangeSet
	owned := false // pending is a private merge result
	defer func() {
		if pending != nil {
			select {
			case out <- pending:
			default:
			}
		}
		close(out)
		go h.cast.Unsub(raw)
		for range raw {
		}
	}()
	for {
		if pending != nil {
			select {
			case out <- pending:
				pending, owned = nil, false
			default:
			}
		}
		var send chan<- *lines.ChangeSet
		if pending != nil {
			send = out
		}
		select {
		case msg, ok := <-raw:
			if !ok {
				return
			}
			cs, ok := msg.(*lines.ChangeSet)
			if !ok {
				continue
			}
			if pending == nil {
				select {
				case out <- cs:
					continue
				default:
				}
			}
			pending, owned = coalesce(pending, owned, cs)
		case send <- pending:
			pending, owned = nil, false
		case <-done:
			pending = nil
			return
		case <-ctx.Done():
			pending = nil
			return
		}
	}
}

// coalesce merges cs into pending. Published change sets are shared between
// subscribers, so they are copied before the first merge.
func coalesce(pending *lines.ChangeSet, owned bool, cs *lines.ChangeSet) (*lines.ChangeSet, bool) {
	if pending == nil {
		return cs, false
	}
	if !owned {
		merged := lines.NewChangeSet()
		merged.Union(pending)
		pending = merged
	}
	pending.Union(cs)
	tracer().Debugf("notify: subscriber lags behind, merged change sets to %v", pending)
	return pending, true
}

// Close shuts down the hub and closes all subscriber channels.
func (h *Hub) Close() {
	if h.closed.Swap(true) {
		return
	}
	h.cast.Close()
}
