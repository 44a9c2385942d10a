// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-state-container/internal/config"
	"go-state-container/internal/event"
)

// StateIndicator — кружок с подписью текущего состояния в углу экрана.
// Подписывается на события диспетчера и «вспыхивает» при каждом переходе.
type StateIndicator struct {
	X, Y           float32
	Radius         float32
	Label          string
	LastChangeTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// Subscribe подписывает индикатор на все события о переходах.
func (i *StateIndicator) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.StateChanged, i)
	d.Subscribe(event.StateReset, i)
}

func (i *StateIndicator) OnEvent(e event.Event) {
	if name, ok := e.Transition.To.NameValue(); ok {
		i.Label = name
	} else {
		i.Label = e.Transition.To.String()
	}
	i.LastChangeTime = time.Now()
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image) {
	elapsed := time.Since(i.LastChangeTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	var c color.Color = config.IndicatorStroke
	if sc, ok := config.StateColors[i.Label]; ok {
		c = sc
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, r, c, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.IndicatorStroke, true)

	x := int(i.X) - len(i.Label)*config.TextCharWidth - int(i.Radius)*2
	text.Draw(screen, i.Label, basicfont.Face7x13, x, int(i.Y)+4, config.TextLightColor)
}
