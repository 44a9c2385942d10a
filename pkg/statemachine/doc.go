// pkg/statemachine/doc.go

// Package statemachine — небольшой контейнер состояний для игрового цикла.
//
// Состояния регистрируются под ключом (Key), одно из них текущее, и контейнер
// пересылает ему OnEnter/OnUpdate/OnExit:
//
//	sm := statemachine.NewStateMachine()
//	_ = sm.AddNamedState("menu", menu, true)
//	_ = sm.AddNamedState("play", play, false)
//
//	// раз в кадр
//	sm.Update()
//
//	// из игровой логики или обработки ввода
//	if err := sm.SetNamedState("play", false); err != nil {
//	    // statemachine.IsStateNotFoundError(err)
//	}
//
// StateMachine сам реализует State, поэтому один контейнер можно
// зарегистрировать внутри другого.
package statemachine
