// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-state-container/internal/app"
	"go-state-container/internal/config"
	"go-state-container/pkg/statemachine"
)

var _ Drawer = (*GameState)(nil)

// GameState — игровое состояние. Вход из меню или R (принудительный
// перезапуск) начинают раунд заново, возврат из паузы — нет.
type GameState struct {
	statemachine.Base
	clock *app.Clock
	round *app.Round
}

func NewGameState(clock *app.Clock, width, height int) *GameState {
	player := app.NewPlayer(config.PlayerSize, config.PlayerSpeed, float64(width), float64(height))
	return &GameState{
		clock: clock,
		round: app.NewRound(player),
	}
}

func (g *GameState) OnEnter() {
	g.round.Enter()
}

func (g *GameState) OnUpdate() {
	sm := g.StateMachine()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyF9):
		g.round.Pause()
		switchTo(sm, config.StatePause, false)
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		switchTo(sm, config.StatePlay, true)
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		switchTo(sm, config.StateMenu, false)
		return
	}

	g.round.Step(g.clock.Delta())
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	p := g.round.Player
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Size), float32(p.Size), config.PlayerColor, false)

	// Debug text
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Time: %.1fs  Round: %d\nP pause  R restart  Esc menu", g.round.Elapsed, g.round.Resets))
}
