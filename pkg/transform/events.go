package transform

// Subscription identifies a handler registered with OnModified.
type Subscription uint64

type observer struct {
	id Subscription
	fn func()
}

// OnModified registers fn to run after every operation that changes the
// transform. Handlers run synchronously, in registration order, on the
// goroutine that made the change. A handler must not mutate the transform
// that notified it.
func (t *Transform) OnModified(fn func()) Subscription {
	t.nextID++
	t.observers = append(t.observers, observer{id: t.nextID, fn: fn})
	return t.nextID
}

// Unsubscribe removes a handler. It reports whether the subscription was
// registered.
func (t *Transform) Unsubscribe(s Subscription) bool {
	for i, o := range t.observers {
		if o.id == s {
			t.observers = append(t.observers[:i:i], t.observers[i+1:]...)
			return true
		}
	}
	return false
}

func (t *Transform) notify() {
	for _, o := range t.observers {
		o.fn()
	}
}
