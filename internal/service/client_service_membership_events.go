package service

import (
	"sync"

	"github.com/MKhiriev/go-nft-keeper/models"
)

// changeBroadcaster fans MembershipChange events out to subscribers without
// ever blocking the publisher.
type changeBroadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan models.MembershipChange
}

func newChangeBroadcaster() *changeBroadcaster {
	return &changeBroadcaster{subs: make(map[int]chan models.MembershipChange)}
}

func (b *changeBroadcaster) subscribe(buffer int) (<-chan models.MembershipChange, func()) {
	if buffer < 0 {
		buffer = 0
	}
	ch := make(chan models.MembershipChange, buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}

	return ch, unsubscribe
}

// publish never sends on a closed channel: closing happens under the same
// lock.
func (b *changeBroadcaster) publish(change models.MembershipChange) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- change:
		default:
		}
	}
}
