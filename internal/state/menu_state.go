// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-state-container/internal/config"
	"go-state-container/pkg/statemachine"
)

var _ Drawer = (*MenuState)(nil)

// MenuState — стартовый экран
type MenuState struct {
	statemachine.Base
	width, height int
}

func NewMenuState(width, height int) *MenuState {
	return &MenuState{width: width, height: height}
}

func (m *MenuState) OnUpdate() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		switchTo(m.StateMachine(), config.StatePlay, false)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawCentered(screen, "PRESS SPACE TO START", m.width, m.height/2)
	drawCentered(screen, "P PAUSE  R RESTART  ESC MENU", m.width, m.height/2+config.TextLineHeight)
}

// drawCentered рисует строку по центру экрана по горизонтали.
func drawCentered(screen *ebiten.Image, s string, width, y int) {
	x := (width - len(s)*config.TextCharWidth) / 2
	text.Draw(screen, s, basicfont.Face7x13, x, y, config.TextLightColor)
}
