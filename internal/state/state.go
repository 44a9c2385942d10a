// internal/state/state.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"go-state-container/internal/app"
	"go-state-container/internal/config"
	"go-state-container/pkg/statemachine"
)

// Drawer реализуют состояния, которые умеют себя рисовать.
// Контейнер про отрисовку ничего не знает, её вызывает AppGame.
type Drawer interface {
	Draw(screen *ebiten.Image)
}

// Parameters собирает набор состояний демо для пакетной регистрации.
// Текущим становится start (menu или play).
func Parameters(clock *app.Clock, width, height int, start string) statemachine.StateParameters {
	menu := NewMenuState(width, height)
	game := NewGameState(clock, width, height)
	pause := NewPauseState(game, width, height)

	return statemachine.StateParameters{}.
		Add(statemachine.Name(config.StateMenu), menu, start == config.StateMenu).
		Add(statemachine.Name(config.StatePlay), game, start == config.StatePlay).
		Add(statemachine.Name(config.StatePause), pause, false)
}

// switchTo переключает контейнер из хука состояния. Хуки ничего не возвращают,
// поэтому ошибку остаётся только залогировать.
func switchTo(sm *statemachine.StateMachine, name string, force bool) {
	if sm == nil {
		return
	}
	if err := sm.SetNamedState(name, force); err != nil {
		slog.Error("failed to switch state", "to", name, "force", force, "error", err)
	}
}
