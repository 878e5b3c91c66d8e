package engine

// Event delivers a value to every listener, in the order they were added.
// The zero value is ready to use.
type Event[T any] struct {
	listeners []func(T)
}

// AddListener registers fn. A nil fn is ignored.
func (e *Event[T]) AddListener(fn func(T)) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

func (e *Event[T]) Invoke(value T) {
	for _, fn := range e.listeners {
		fn(value)
	}
}
