// pkg/statemachine/params.go
package statemachine

import "fmt"

// StateParameter — одна запись пакетной регистрации.
type StateParameter struct {
	Key             Key
	State           State
	SetCurrentState bool
}

// StateParameters — упорядоченный набор записей для AddStates.
type StateParameters []StateParameter

// Add дописывает запись и возвращает набор, чтобы вызовы можно было цеплять.
func (p StateParameters) Add(key Key, state State, setCurrent bool) StateParameters {
	return append(p, StateParameter{Key: key, State: state, SetCurrentState: setCurrent})
}

// AddStates регистрирует записи по порядку и останавливается на первой ошибке;
// уже добавленные записи остаются зарегистрированными.
func (sm *StateMachine) AddStates(params StateParameters) error {
	if params == nil {
		return &InvalidArgumentError{ParamName: "params", Message: "state parameters must not be nil"}
	}
	for i, p := range params {
		if err := sm.AddState(p.Key, p.State, p.SetCurrentState); err != nil {
			return fmt.Errorf("state parameter %d (%s): %w", i, p.Key, err)
		}
	}
	return nil
}
