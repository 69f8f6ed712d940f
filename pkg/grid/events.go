package grid

// ValueChangedFunc observes a successful in-bounds SetValue.
type ValueChangedFunc[T any] func(x, y int, value T)

// Subscription identifies a registered observer.
type Subscription int

type subscriber[T any] struct {
	id Subscription
	fn ValueChangedFunc[T]
}

// OnValueChanged registers fn and returns a handle for Unsubscribe.
// Observers run synchronously in registration order.
func (g *Grid[T]) OnValueChanged(fn ValueChangedFunc[T]) Subscription {
	if fn == nil {
		return 0
	}
	g.nextSub++
	g.subs = append(g.subs, subscriber[T]{id: g.nextSub, fn: fn})
	return g.nextSub
}

// Unsubscribe removes the observer registered under s. It reports whether
// anything was removed.
func (g *Grid[T]) Unsubscribe(s Subscription) bool {
	for i, sub := range g.subs {
		if sub.id != s {
			continue
		}
		// Rebuild instead of shifting in place so a dispatch already ranging
		// over the old slice is not disturbed.
		next := make([]subscriber[T], 0, len(g.subs)-1)
		next = append(next, g.subs[:i]...)
		next = append(next, g.subs[i+1:]...)
		g.subs = next
		return true
	}
	return false
}

// Subscribers returns the number of registered observers.
func (g *Grid[T]) Subscribers() int { return len(g.subs) }

func (g *Grid[T]) notify(x, y int, value T) {
	for _, sub := range g.subs {
		sub.fn(x, y, value)
	}
}
