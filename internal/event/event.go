// internal/event/event.go
package event

import (
	"reflect"

	"go-state-container/pkg/statemachine"
)

// Type — тип события
type Type string

// Event — событие о смене состояния контейнера.
type Event struct {
	Type       Type
	Transition statemachine.Transition
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(e Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher — синхронный диспетчер событий. Как и контейнер, рассчитан на одну горутину.
type Dispatcher struct {
	listeners map[Type][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Type][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(t Type, l Listener) {
	d.listeners[t] = append(d.listeners[t], l)
}

// Unsubscribe снимает первую подписку l на t. Подписки сравниваются по ==,
// поэтому несравнимые слушатели (например, ListenerFunc) не отписываются.
func (d *Dispatcher) Unsubscribe(t Type, l Listener) {
	if l == nil || !reflect.TypeOf(l).Comparable() {
		return
	}
	listeners := d.listeners[t]
	for i, cur := range listeners {
		if cur == l {
			d.listeners[t] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам в порядке подписки
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}
