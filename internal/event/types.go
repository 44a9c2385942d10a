// internal/event/types.go
package event

import "go-state-container/pkg/statemachine"

const (
	StateChanged Type = "StateChanged" // текущее состояние сменилось
	StateReset   Type = "StateReset"   // текущее состояние перезапущено принудительно
)

// TransitionPublisher превращает переходы контейнера в события диспетчера.
type TransitionPublisher struct {
	d *Dispatcher
}

func NewTransitionPublisher(d *Dispatcher) *TransitionPublisher {
	return &TransitionPublisher{d: d}
}

func (p *TransitionPublisher) OnTransition(tr statemachine.Transition) {
	t := StateChanged
	if tr.Forced {
		t = StateReset
	}
	p.d.Dispatch(Event{Type: t, Transition: tr})
}

var _ statemachine.Observer = (*TransitionPublisher)(nil)
