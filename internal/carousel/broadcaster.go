package carousel

// Observer is notified whenever the active index is (re)applied.
type Observer interface {
	OnIndexChange(idx Index)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Index)

// OnIndexChange implements Observer.
func (f ObserverFunc) OnIndexChange(idx Index) { f(idx) }

type subscription struct {
	id  int
	obs Observer
}

// Broadcaster fans index changes out to subscribed observers, synchronously
// and in subscription order.
type Broadcaster struct {
	nextID int
	subs   []subscription
	sent   int
}

// NewBroadcaster creates a broadcaster with no observers.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe adds obs and returns a function that removes it.
// Nil observers are ignored.
func (b *Broadcaster) Subscribe(obs Observer) func() {
	if obs == nil {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, obs: obs})
	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Notify delivers idx to every observer.
func (b *Broadcaster) Notify(idx Index) {
	b.sent++
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	for _, s := range subs {
		obs := s.obs
		safeCall(func() { obs.OnIndexChange(idx) })
	}
}

// Sent returns how many notifications have been broadcast.
func (b *Broadcaster) Sent() int {
	return b.sent
}

// Len returns the number of subscribed observers.
func (b *Broadcaster) Len() int {
	return len(b.subs)
}

// safeCall runs fn, recovering from panics. One observer failing shouldn't
// block the others.
func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
