// internal/app/round.go
package app

// Round — игровой раунд: время, число запусков и игрок.
// GameState пересылает сюда свои хуки, чтобы логику можно было проверить без ebiten.
type Round struct {
	Player  *Player
	Elapsed float64
	Resets  int

	resuming bool
}

func NewRound(p *Player) *Round {
	return &Round{Player: p}
}

// Pause помечает, что следующий Enter будет возвратом из паузы.
func (r *Round) Pause() {
	r.resuming = true
}

// Enter начинает новый раунд, если это не возврат из паузы.
func (r *Round) Enter() {
	if r.resuming {
		r.resuming = false
		return
	}
	r.Player.Reset()
	r.Elapsed = 0
	r.Resets++
}

// Step продвигает раунд на dt секунд.
func (r *Round) Step(dt float64) {
	r.Elapsed += dt
	r.Player.Step(dt)
}
