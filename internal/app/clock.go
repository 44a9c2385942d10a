// internal/app/clock.go
package app

import "time"

// Clock считает время кадра. Delta ограничена сверху, чтобы после
// долгой паузы (сворачивание окна, брейкпоинт) игра не «прыгала».
type Clock struct {
	last     time.Time
	maxDelta float64
	delta    float64
	elapsed  float64
}

func NewClock(now time.Time, maxDelta float64) *Clock {
	return &Clock{last: now, maxDelta: maxDelta}
}

// Tick фиксирует новый кадр и возвращает его длительность в секундах.
func (c *Clock) Tick(now time.Time) float64 {
	dt := now.Sub(c.last).Seconds()
	if dt < 0 {
		dt = 0
	}
	if dt > c.maxDelta {
		dt = c.maxDelta
	}
	c.last = now
	c.delta = dt
	c.elapsed += dt
	return dt
}

// Delta — длительность последнего кадра.
func (c *Clock) Delta() float64 {
	return c.delta
}

// Elapsed — суммарное время всех кадров с учётом ограничения.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}
