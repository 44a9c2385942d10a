// pkg/statemachine/statemachine.go
package statemachine

import (
	"iter"
	"maps"
	"reflect"
)

// StateMachine — контейнер состояний: хранит зарегистрированные состояния
// и пересылает вызовы жизненного цикла текущему.
//
// StateMachine не потокобезопасен: все вызовы должны идти из одной горутины
// (игрового цикла, который вызывает Update раз в кадр).
type StateMachine struct {
	states     map[Key]State
	current    State
	currentKey Key
	observers  []Observer
}

// NewStateMachine создаёт пустой контейнер без текущего состояния.
func NewStateMachine(opts ...Option) *StateMachine {
	sm := &StateMachine{
		states: make(map[Key]State),
	}
	for _, opt := range opts {
		opt(sm)
	}
	return sm
}

// NewStateMachineFrom создаёт контейнер и регистрирует в нём набор состояний.
func NewStateMachineFrom(params StateParameters, opts ...Option) (*StateMachine, error) {
	sm := NewStateMachine(opts...)
	if err := sm.AddStates(params); err != nil {
		return nil, err
	}
	return sm, nil
}

// AddState регистрирует состояние под ключом. Если setCurrent, сразу переходит в него.
func (sm *StateMachine) AddState(key Key, state State, setCurrent bool) error {
	if err := key.validate(); err != nil {
		return err
	}
	if state == nil {
		return &InvalidArgumentError{ParamName: "state", Message: "state must not be nil"}
	}
	if _, exists := sm.states[key]; exists {
		return &DuplicateKeyError{Key: key}
	}

	if b, ok := state.(Binder); ok {
		b.SetStateMachine(sm)
	}
	sm.states[key] = state

	if setCurrent {
		sm.setState(key, state, false)
	}
	return nil
}

// AddNamedState — то же, что AddState(Name(name), ...).
func (sm *StateMachine) AddNamedState(name string, state State, setCurrent bool) error {
	if name == "" {
		return &InvalidArgumentError{ParamName: "name", Message: "name must not be empty"}
	}
	return sm.AddState(Name(name), state, setCurrent)
}

// SetState делает текущим состояние с ключом key. Повторный переход в текущее
// состояние ничего не делает, если не задан force: тогда у него снова
// вызываются OnExit и OnEnter.
func (sm *StateMachine) SetState(key Key, force bool) error {
	if err := key.validate(); err != nil {
		return err
	}
	state, ok := sm.states[key]
	if !ok {
		return &StateNotFoundError{Key: key}
	}
	sm.setState(key, state, force)
	return nil
}

// SetNamedState — то же, что SetState(Name(name), force).
func (sm *StateMachine) SetNamedState(name string, force bool) error {
	if name == "" {
		return &InvalidArgumentError{ParamName: "name", Message: "name must not be empty"}
	}
	return sm.SetState(Name(name), force)
}

func (sm *StateMachine) setState(key Key, state State, force bool) {
	if !force && sm.isCurrent(key, state) {
		return
	}
	sm.replaceState(key, state, force)
}

// isCurrent: совпадение ключа или того же экземпляра под другим ключом.
// Экземпляры сравниваются только для сравнимых типов, иначе == паникует.
func (sm *StateMachine) isCurrent(key Key, state State) bool {
	if sm.current == nil {
		return false
	}
	if key == sm.currentKey {
		return true
	}
	return isComparable(state) && isComparable(sm.current) && state == sm.current
}

func isComparable(s State) bool {
	return reflect.TypeOf(s).Comparable()
}

// replaceState: OnExit всегда до смены указателя, OnEnter всегда после.
// Наблюдатели узнают о переходе сразу после смены указателя, до OnEnter,
// чтобы переход, запрошенный из OnEnter, пришёл к ним следующим по порядку.
func (sm *StateMachine) replaceState(key Key, state State, force bool) {
	tr := Transition{From: sm.currentKey, To: key, Forced: force && sm.isCurrent(key, state)}

	if sm.current != nil {
		sm.current.OnExit()
	}
	sm.current = state
	sm.currentKey = key

	for _, o := range sm.observers {
		o.OnTransition(tr)
	}

	if sm.current != nil {
		sm.current.OnEnter()
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update() {
	if sm.current != nil {
		sm.current.OnUpdate()
	}
}

// Enter вызывает OnEnter у текущего состояния, не меняя его.
func (sm *StateMachine) Enter() {
	if sm.current != nil {
		sm.current.OnEnter()
	}
}

// Exit вызывает OnExit у текущего состояния, не меняя его.
func (sm *StateMachine) Exit() {
	if sm.current != nil {
		sm.current.OnExit()
	}
}

// OnEnter, OnUpdate и OnExit позволяют вложить контейнер в другой контейнер как обычное состояние.
func (sm *StateMachine) OnEnter()  { sm.Enter() }
func (sm *StateMachine) OnUpdate() { sm.Update() }
func (sm *StateMachine) OnExit()   { sm.Exit() }

// Current возвращает текущее состояние; ok == false, пока ни одно не выбрано.
func (sm *StateMachine) Current() (State, bool) {
	return sm.current, sm.current != nil
}

// CurrentKey возвращает ключ текущего состояния.
func (sm *StateMachine) CurrentKey() (Key, bool) {
	return sm.currentKey, sm.current != nil
}

func (sm *StateMachine) Lookup(key Key) (State, bool) {
	state, ok := sm.states[key]
	return state, ok
}

func (sm *StateMachine) Contains(key Key) bool {
	_, ok := sm.states[key]
	return ok
}

func (sm *StateMachine) Len() int {
	return len(sm.states)
}

// All перечисляет все зарегистрированные пары ключ/состояние. Порядок не определён.
func (sm *StateMachine) All() iter.Seq2[Key, State] {
	return maps.All(sm.states)
}

// Keys перечисляет ключи зарегистрированных состояний. Порядок не определён.
func (sm *StateMachine) Keys() iter.Seq[Key] {
	return maps.Keys(sm.states)
}
