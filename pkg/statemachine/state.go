// pkg/statemachine/state.go
package statemachine

// State — набор хуков жизненного цикла, которые контейнер вызывает у текущего состояния.
type State interface {
	OnEnter()
	OnUpdate()
	OnExit()
}

// Binder реализуют состояния, которым нужна ссылка на свой контейнер
// (например, чтобы самим переключать состояние из OnUpdate).
type Binder interface {
	SetStateMachine(sm *StateMachine)
}

// Base — встраиваемая заготовка состояния: пустые хуки и обратная ссылка на контейнер.
type Base struct {
	sm *StateMachine
}

// SetStateMachine запоминает контейнер, в котором зарегистрировано состояние.
func (b *Base) SetStateMachine(sm *StateMachine) {
	b.sm = sm
}

// StateMachine возвращает контейнер-владелец или nil, если состояние не зарегистрировано.
func (b *Base) StateMachine() *StateMachine {
	return b.sm
}

func (b *Base) OnEnter()  {}
func (b *Base) OnUpdate() {}
func (b *Base) OnExit()   {}

var (
	_ State  = (*Base)(nil)
	_ Binder = (*Base)(nil)
	_ State  = (*StateMachine)(nil)
)
