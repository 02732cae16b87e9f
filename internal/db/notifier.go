package db

import "sync"

// Notifier is the invalidation hub behind live queries. Every write to a
// table broadcasts on that table's topic; subscribers re-run their query on
// each signal.
//
// Signal channels are buffered with capacity one and sends never block, so
// a burst of writes coalesces into a single pending signal for a slow
// subscriber. Subscriptions are released with the returned cancel func;
// nothing is cleaned up implicitly.
type Notifier struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[string]map[uint64]chan struct{}
}

// NewNotifier creates an empty notification hub.
func NewNotifier() *Notifier {
	return &Notifier{
		subs: make(map[string]map[uint64]chan struct{}),
	}
}

// Subscribe registers interest in writes to table. The returned channel
// receives a signal after every Broadcast(table); cancel releases the
// subscription and must be called exactly once.
func (n *Notifier) Subscribe(table string) (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan struct{}, 1)
	id := n.nextID
	n.nextID++

	if n.subs[table] == nil {
		n.subs[table] = make(map[uint64]chan struct{})
	}
	n.subs[table][id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs[table], id)
	}

	return ch, cancel
}

// Broadcast signals every active subscriber of table. Subscribers that
// already have a pending signal are skipped (coalescing).
func (n *Notifier) Broadcast(table string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs[table] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
