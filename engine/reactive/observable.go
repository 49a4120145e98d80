// Package reactive is a small push-notification channel: an Observable
// broadcasts values to the Reactors subscribed to it.
//
// All methods must be called from one goroutine (the render thread).
package reactive

// Reactor receives notifications. Nil callbacks are skipped.
type Reactor[T any] struct {
	OnNext      func(T)
	OnCompleted func()
}

// Subscription is the handle returned by Subscribe.
type Subscription[T any] struct {
	owner   *Observable[T]
	reactor Reactor[T]
	active  bool
}

// Unsubscribe removes the reactor from its observable. Calling it more
// than once is a no-op.
func (s *Subscription[T]) Unsubscribe() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	s.owner.remove(s)
}

// Active reports whether the subscription still receives notifications.
func (s *Subscription[T]) Active() bool { return s != nil && s.active }

// Observable owns its subscriber list.
type Observable[T any] struct {
	subs      []*Subscription[T]
	completed bool
}

func NewObservable[T any]() *Observable[T] { return &Observable[T]{} }

// Subscribe registers r. Subscribing to a completed observable returns an
// inactive subscription and calls r.OnCompleted right away.
func (o *Observable[T]) Subscribe(r Reactor[T]) *Subscription[T] {
	s := &Subscription[T]{owner: o, reactor: r}
	if o.completed {
		if r.OnCompleted != nil {
			r.OnCompleted()
		}
		return s
	}
	s.active = true
	o.subs = append(o.subs, s)
	return s
}

// Push delivers v to every subscriber in subscription order. Reactors may
// unsubscribe themselves or others while being notified; a reactor removed
// during the push is not called afterwards.
func (o *Observable[T]) Push(v T) {
	if o.completed {
		return
	}
	for _, s := range o.snapshot() {
		if s.active && s.reactor.OnNext != nil {
			s.reactor.OnNext(v)
		}
	}
}

// Complete notifies every subscriber and drops them. Later pushes are ignored.
func (o *Observable[T]) Complete() {
	if o.completed {
		return
	}
	o.completed = true
	subs := o.snapshot()
	o.subs = nil
	for _, s := range subs {
		if !s.active {
			continue
		}
		s.active = false
		if s.reactor.OnCompleted != nil {
			s.reactor.OnCompleted()
		}
	}
}

// UnsubscribeAll drops every subscriber without notifying them.
func (o *Observable[T]) UnsubscribeAll() {
	for _, s := range o.subs {
		s.active = false
	}
	o.subs = nil
}

// Len returns the number of active subscriptions.
func (o *Observable[T]) Len() int { return len(o.subs) }

func (o *Observable[T]) snapshot() []*Subscription[T] {
	out := make([]*Subscription[T], len(o.subs))
	copy(out, o.subs)
	return out
}

func (o *Observable[T]) remove(s *Subscription[T]) {
	for i, cur := range o.subs {
		if cur == s {
			o.subs = append(o.subs[:i], o.subs[i+1:]...)
			return
		}
	}
}
