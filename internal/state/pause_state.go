// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-state-container/internal/config"
	"go-state-container/pkg/statemachine"
)

// Убеждаемся, что PauseState умеет рисоваться
var _ Drawer = (*PauseState)(nil)

type PauseState struct {
	statemachine.Base
	background    Drawer
	width, height int
}

// NewPauseState: background рисуется под затемнением (обычно это GameState).
func NewPauseState(background Drawer, width, height int) *PauseState {
	return &PauseState{background: background, width: width, height: height}
}

func (s *PauseState) OnUpdate() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		switchTo(s.StateMachine(), config.StatePlay, false)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.background != nil {
		s.background.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, float32(s.width), float32(s.height), config.OverlayColor, false)
	drawCentered(screen, "PAUSED", s.width, s.height/2)
}
