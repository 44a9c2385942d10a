// internal/app/player.go
package app

// Player — квадрат, который ездит по экрану между стенками.
// Вся логика без ebiten, чтобы её можно было гонять в тестах.
type Player struct {
	X, Y   float64
	Size   float64
	Speed  float64
	dir    float64
	bounds float64
}

func NewPlayer(size, speed, screenWidth, screenHeight float64) *Player {
	p := &Player{Size: size, Speed: speed, bounds: screenWidth}
	p.Y = (screenHeight - size) / 2
	p.Reset()
	return p
}

// Reset возвращает игрока к левому краю.
func (p *Player) Reset() {
	p.X = 0
	p.dir = 1
}

// Step двигает игрока на dt секунд, отражая его от краёв экрана.
func (p *Player) Step(dt float64) {
	p.X += p.dir * p.Speed * dt
	maxX := p.bounds - p.Size
	switch {
	case p.X >= maxX:
		p.X = maxX - (p.X - maxX)
		p.dir = -1
	case p.X <= 0:
		p.X = -p.X
		p.dir = 1
	}
}
