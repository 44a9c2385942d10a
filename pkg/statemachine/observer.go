// pkg/statemachine/observer.go
package statemachine

// Transition — описание перехода. From — нулевой Key, если текущего состояния не было.
type Transition struct {
	From   Key
	To     Key
	Forced bool
}

// Observer получает каждый переход сразу после смены текущего состояния,
// до вызова OnEnter у нового состояния.
type Observer interface {
	OnTransition(tr Transition)
}

// ObserverFunc позволяет передать обычную функцию как Observer.
type ObserverFunc func(tr Transition)

func (f ObserverFunc) OnTransition(tr Transition) { f(tr) }

// Option настраивает StateMachine.
type Option func(*StateMachine)

// WithObserver добавляет наблюдателя. Можно передавать несколько раз; nil игнорируется.
func WithObserver(o Observer) Option {
	return func(sm *StateMachine) {
		if o != nil {
			sm.observers = append(sm.observers, o)
		}
	}
}
